package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Review, error)
}
