// Package tablestate derives what a guest should see from the authoritative
// table snapshot.
package tablestate

import (
	"sort"

	"comanda/internal/domain/cart"
	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Snapshot is re-fetched from the store on every (re)connect.
type Snapshot struct {
	Order   *entities.Order       `json:"order,omitempty"`
	Batches []entities.OrderBatch `json:"batches"`
	Guests  []entities.Guest      `json:"guests"`
	Lines   []entities.OrderItem  `json:"lines"`
}

type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenProgress Screen = "progress"
	ScreenCheckout Screen = "checkout"
	ScreenFeedback Screen = "feedback"
)

type View struct {
	Screen            Screen                `json:"screen"`
	OrderID           string                `json:"order_id,omitempty"`
	OrderStatus       entities.OrderStatus  `json:"order_status,omitempty"`
	KitchenStatus     entities.BatchStatus  `json:"kitchen_status"`
	Batches           []entities.OrderBatch `json:"batches"`
	Guest             *entities.Guest       `json:"guest,omitempty"`
	HasPending        bool                  `json:"has_pending"`
	GuestPendingTotal decimal.Decimal       `json:"guest_pending_total"`
	PendingTotal      decimal.Decimal       `json:"pending_total"`
	ConfirmedTotal    decimal.Decimal       `json:"confirmed_total"`
	GrandTotal        decimal.Decimal       `json:"grand_total"`
}

// AggregateStatus is the least advanced status among the sent batches, or
// CREADO when nothing has been sent.
func AggregateStatus(batches []entities.OrderBatch) entities.BatchStatus {
	var least entities.BatchStatus
	for _, b := range batches {
		if b.Status.Rank() == 0 {
			continue
		}
		if least == "" || b.Status.Rank() < least.Rank() {
			least = b.Status
		}
	}
	if least == "" {
		return entities.BatchStatusCreado
	}
	return least
}

func Derive(s Snapshot, guestID string, prices cart.PriceLookup) View {
	c := cart.New("", s.Lines, prices, func() string { return "" })

	batches := make([]entities.OrderBatch, len(s.Batches))
	copy(batches, s.Batches)
	sort.Slice(batches, func(i, j int) bool { return batches[i].BatchNumber < batches[j].BatchNumber })

	v := View{
		KitchenStatus:     AggregateStatus(batches),
		Batches:           batches,
		HasPending:        len(c.Pending()) > 0,
		GuestPendingTotal: c.TotalPending(guestID),
		PendingTotal:      c.TotalPending(""),
		ConfirmedTotal:    c.TotalConfirmed(),
		GrandTotal:        c.GrandTotal(),
	}
	for i := range s.Guests {
		if s.Guests[i].ID == guestID {
			g := s.Guests[i]
			v.Guest = &g
			break
		}
	}
	if s.Order != nil {
		v.OrderID = s.Order.ID
		v.OrderStatus = s.Order.Status
	}

	switch {
	case s.Order != nil && s.Order.Status == entities.OrderStatusPagado:
		v.Screen = ScreenFeedback
	case v.Guest != nil && v.Guest.Paid:
		v.Screen = ScreenCheckout
	case v.Guest != nil && v.Guest.IndividualAmount != nil:
		v.Screen = ScreenCheckout
	case len(batches) > 0:
		v.Screen = ScreenProgress
	default:
		v.Screen = ScreenMenu
	}
	return v
}
