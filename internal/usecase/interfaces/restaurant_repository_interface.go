package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IRestaurantRepository resolves the read-only restaurant reference data.
//
// Lookups return a zero value (empty ID) and a nil error when nothing matches.
type IRestaurantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Restaurant, error)
	GetByAccessCode(ctx context.Context, accessCode string) (entities.Restaurant, error)
	GetTable(ctx context.Context, restaurantID, number string) (entities.Table, error)
	GetTableByID(ctx context.Context, id string) (entities.Table, error)
	GetPaymentConfig(ctx context.Context, restaurantID string) (entities.PaymentConfig, error)
}
