package response

import (
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase"
)

type LineResponse struct {
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

func FromLine(l entities.OrderItem) LineResponse {
	res := LineResponse{
		ID:                 l.ID,
		TableID:            l.TableID,
		ItemID:             l.ItemID,
		GuestID:            l.GuestID,
		Quantity:           l.Quantity,
		Extras:             l.Extras,
		RemovedIngredients: l.RemovedIngredients,
		IsConfirmed:        l.IsConfirmed,
		BatchID:            l.BatchID,
		OrderID:            l.OrderID,
		Rating:             l.Rating,
		CreatedAt:          l.CreatedAt,
	}
	if res.Extras == nil {
		res.Extras = []string{}
	}
	if res.RemovedIngredients == nil {
		res.RemovedIngredients = []string{}
	}
	return res
}

func FromLines(lines []entities.OrderItem) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromLine(l))
	}
	return out
}

type TotalsResponse struct {
	GuestPending string `json:"guest_pending"`
	Pending      string `json:"pending"`
	Confirmed    string `json:"confirmed"`
	Grand        string `json:"grand"`
}

func FromTotals(t usecase.CartTotals) TotalsResponse {
	return TotalsResponse{
		GuestPending: money(t.GuestPending),
		Pending:      money(t.Pending),
		Confirmed:    money(t.Confirmed),
		Grand:        money(t.Grand),
	}
}

type CartResponse struct {
	Lines  []LineResponse `json:"lines"`
	Totals TotalsResponse `json:"totals"`
}

// LineUpdateResponse tells the client whether the line survived the update.
type LineUpdateResponse struct {
	Result string        `json:"result"`
	Line   *LineResponse `json:"line,omitempty"`
}
