package response

import (
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/domain/tablestate"
	"comanda/internal/usecase"
)

type OrderResponse struct {
	ID          string    `json:"id"`
	TableID     string    `json:"table_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	GuestCount  int       `json:"guest_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		TableID:     o.TableID,
		Status:      string(o.Status),
		TotalAmount: money(o.TotalAmount),
		GuestCount:  o.GuestCount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

type BatchResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	BatchNumber int       `json:"batch_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBatch(b entities.OrderBatch) BatchResponse {
	return BatchResponse{
		ID:          b.ID,
		OrderID:     b.OrderID,
		BatchNumber: b.BatchNumber,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBatches(batches []entities.OrderBatch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, FromBatch(b))
	}
	return out
}

type SendResponse struct {
	Sent  bool           `json:"sent"`
	Order *OrderResponse `json:"order,omitempty"`
	Batch *BatchResponse `json:"batch,omitempty"`
	Lines []LineResponse `json:"lines"`
}

func FromSendResult(r usecase.SendResult) SendResponse {
	res := SendResponse{Sent: r.Sent, Lines: FromLines(r.Lines)}
	if r.Sent {
		o := FromOrder(r.Order)
		b := FromBatch(r.Batch)
		res.Order = &o
		res.Batch = &b
	}
	return res
}

// SnapshotResponse is the first frame of the table stream and the body of
// the resync endpoint.
type SnapshotResponse struct {
	Order   *OrderResponse  `json:"order,omitempty"`
	Batches []BatchResponse `json:"batches"`
	Guests  []GuestResponse `json:"guests"`
	Lines   []LineResponse  `json:"lines"`
}

func FromSnapshot(s tablestate.Snapshot) SnapshotResponse {
	res := SnapshotResponse{
		Batches: FromBatches(s.Batches),
		Guests:  FromGuests(s.Guests),
		Lines:   FromLines(s.Lines),
	}
	if s.Order != nil {
		o := FromOrder(*s.Order)
		res.Order = &o
	}
	return res
}

type ViewResponse struct {
	Screen            string          `json:"screen"`
	OrderID           string          `json:"order_id,omitempty"`
	OrderStatus       string          `json:"order_status,omitempty"`
	KitchenStatus     string          `json:"kitchen_status"`
	Batches           []BatchResponse `json:"batches"`
	Guest             *GuestResponse  `json:"guest,omitempty"`
	HasPending        bool            `json:"has_pending"`
	GuestPendingTotal string          `json:"guest_pending_total"`
	PendingTotal      string          `json:"pending_total"`
	ConfirmedTotal    string          `json:"confirmed_total"`
	GrandTotal        string          `json:"grand_total"`
}

func FromView(v tablestate.View) ViewResponse {
	res := ViewResponse{
		Screen:            string(v.Screen),
		OrderID:           v.OrderID,
		OrderStatus:       string(v.OrderStatus),
		KitchenStatus:     string(v.KitchenStatus),
		Batches:           FromBatches(v.Batches),
		HasPending:        v.HasPending,
		GuestPendingTotal: money(v.GuestPendingTotal),
		PendingTotal:      money(v.PendingTotal),
		ConfirmedTotal:    money(v.ConfirmedTotal),
		GrandTotal:        money(v.GrandTotal),
	}
	if v.Guest != nil {
		g := FromGuest(*v.Guest)
		res.Guest = &g
	}
	return res
}
