package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

type IMenuRepository interface {
	ListCategories(ctx context.Context, restaurantID string) ([]entities.Category, error)
	ListItems(ctx context.Context, restaurantID string) ([]entities.MenuItem, error)
}
