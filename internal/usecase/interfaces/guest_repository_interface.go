package interfaces

import (
	"context"

	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type IGuestRepository interface {
	CreateMany(ctx context.Context, guests []entities.Guest) ([]entities.Guest, error)
	GetByID(ctx context.Context, id string) (entities.Guest, error)
	ListByTableID(ctx context.Context, tableID string) ([]entities.Guest, error)
	SetIndividualAmounts(ctx context.Context, amounts map[string]decimal.Decimal) error
	UpdatePayment(ctx context.Context, id string, paid bool, method entities.PaymentMethod) (entities.Guest, error)
	DeleteByTableID(ctx context.Context, tableID string) error
}
