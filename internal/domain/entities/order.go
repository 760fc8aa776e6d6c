package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusAbierto OrderStatus = "ABIERTO"
	OrderStatusPagado  OrderStatus = "PAGADO"
)

// BatchStatus evolves forward-only: CREADO -> PREPARANDO -> LISTO -> SERVIDO.
type BatchStatus string

const (
	BatchStatusCreado     BatchStatus = "CREADO"
	BatchStatusPreparando BatchStatus = "PREPARANDO"
	BatchStatusListo      BatchStatus = "LISTO"
	BatchStatusServido    BatchStatus = "SERVIDO"
)

// Rank orders batch statuses; unknown statuses rank below CREADO.
func (s BatchStatus) Rank() int {
	switch s {
	case BatchStatusCreado:
		return 1
	case BatchStatusPreparando:
		return 2
	case BatchStatusListo:
		return 3
	case BatchStatusServido:
		return 4
	}
	return 0
}

// Order is the single open bill of a table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (table_id-index): table_id
//
// Version is bumped on every write and used as a compare-and-swap guard.
type Order struct {
	ID           string          `json:"id"`
	TableID      string          `json:"table_id"`
	RestaurantID string          `json:"restaurant_id"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	GuestCount   int             `json:"guest_count"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (o *Order) IsOpen() bool {
	return o != nil && o.ID != "" && o.Status == OrderStatusAbierto
}

// OrderBatch is one kitchen-bound submission ("envío").
type OrderBatch struct {
	ID          string      `json:"id"`
	OrderID     string      `json:"order_id"`
	BatchNumber int         `json:"batch_number"`
	Status      BatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a cart line.
//
// Unconfirmed lines belong to the table session and may be freely edited.
// Confirmed lines carry BatchID/OrderID and only accept a post-hoc Rating.
type OrderItem struct {
	ID                 string    `json:"id"`
	TableID            string    `json:"table_id"`
	ItemID             string    `json:"item_id"`
	GuestID            string    `json:"guest_id"`
	Quantity           int       `json:"quantity"`
	Extras             []string  `json:"extras"`
	RemovedIngredients []string  `json:"removed_ingredients"`
	IsConfirmed        bool      `json:"is_confirmed"`
	BatchID            string    `json:"batch_id,omitempty"`
	OrderID            string    `json:"order_id,omitempty"`
	Rating             *int      `json:"rating,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// IsSimple reports whether the line has no customizations.
func (i OrderItem) IsSimple() bool {
	return len(i.Extras) == 0 && len(i.RemovedIngredients) == 0
}
