package entities

import "github.com/shopspring/decimal"

type ShareStatus string

const (
	ShareStatusPendiente ShareStatus = "PENDIENTE"
	ShareStatusImpagado  ShareStatus = "IMPAGADO"
	ShareStatusPagado    ShareStatus = "PAGADO"
)

// BillShare is derived, never persisted on its own.
type BillShare struct {
	GuestID string          `json:"guest_id"`
	Amount  decimal.Decimal `json:"amount"`
	Status  ShareStatus     `json:"status"`
}
