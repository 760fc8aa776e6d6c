package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IOrderItemRepository abstracts DynamoDB persistence for cart lines.
//
// Update and Delete only touch unconfirmed lines and fail with ErrConflict
// otherwise.
type IOrderItemRepository interface {
	Create(ctx context.Context, item entities.OrderItem) (entities.OrderItem, error)
	GetByID(ctx context.Context, id string) (entities.OrderItem, error)
	ListByTableID(ctx context.Context, tableID string) ([]entities.OrderItem, error)
	Update(ctx context.Context, item entities.OrderItem) (entities.OrderItem, error)
	Delete(ctx context.Context, id string) error
	SetRating(ctx context.Context, id string, rating int) (entities.OrderItem, error)
	DeleteUnconfirmedByTableID(ctx context.Context, tableID string) error
}
