package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodNone          PaymentMethod = ""
	PaymentMethodMercadoPago   PaymentMethod = "mercadopago"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
	PaymentMethodEfectivo      PaymentMethod = "efectivo"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMercadoPago, PaymentMethodTransferencia, PaymentMethodEfectivo:
		return true
	}
	return false
}

// Guest is one diner at the table.
//
// Storage model (DynamoDB, order_guests):
//   - PK: id
//   - GSI1 (table_id-index): table_id
//
// Exactly one guest per table session has IsHost set (the initiating device).
type Guest struct {
	ID               string           `json:"id"`
	TableID          string           `json:"table_id"`
	Name             string           `json:"name"`
	IsHost           bool             `json:"is_host"`
	IndividualAmount *decimal.Decimal `json:"individual_amount,omitempty"`
	Paid             bool             `json:"paid"`
	PaymentMethod    PaymentMethod    `json:"payment_method,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}
