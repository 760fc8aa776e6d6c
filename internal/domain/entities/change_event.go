package entities

import "time"

type EntityKind string

const (
	EntityOrder EntityKind = "order"
	EntityBatch EntityKind = "batch"
	EntityGuest EntityKind = "guest"
	EntityItem  EntityKind = "item"
)

type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	// ChangeResync tells a subscriber it missed events and must reload the
	// table snapshot. It carries no row.
	ChangeResync ChangeType = "RESYNC"
)

// ChangeEvent is one row change pushed through the per-table change feed.
//
// Status carries the new order/batch status. Paid and PaymentMethod are only
// meaningful for guest events.
type ChangeEvent struct {
	Type          ChangeType    `json:"event_type"`
	Entity        EntityKind    `json:"entity"`
	ID            string        `json:"id"`
	TableID       string        `json:"table_id"`
	OrderID       string        `json:"order_id,omitempty"`
	Status        string        `json:"status,omitempty"`
	BatchNumber   int           `json:"batch_number,omitempty"`
	Paid          *bool         `json:"paid,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

func BatchEvent(tableID string, b OrderBatch, typ ChangeType) ChangeEvent {
	return ChangeEvent{
		Type:        typ,
		Entity:      EntityBatch,
		ID:          b.ID,
		TableID:     tableID,
		OrderID:     b.OrderID,
		Status:      string(b.Status),
		BatchNumber: b.BatchNumber,
		Timestamp:   b.UpdatedAt,
	}
}

func OrderEvent(o Order, typ ChangeType) ChangeEvent {
	return ChangeEvent{
		Type:      typ,
		Entity:    EntityOrder,
		ID:        o.ID,
		TableID:   o.TableID,
		OrderID:   o.ID,
		Status:    string(o.Status),
		Timestamp: o.UpdatedAt,
	}
}

func GuestEvent(g Guest, at time.Time) ChangeEvent {
	paid := g.Paid
	return ChangeEvent{
		Type:          ChangeUpdate,
		Entity:        EntityGuest,
		ID:            g.ID,
		TableID:       g.TableID,
		Paid:          &paid,
		PaymentMethod: g.PaymentMethod,
		Timestamp:     at,
	}
}

func ItemEvent(i OrderItem, typ ChangeType, at time.Time) ChangeEvent {
	return ChangeEvent{
		Type:      typ,
		Entity:    EntityItem,
		ID:        i.ID,
		TableID:   i.TableID,
		OrderID:   i.OrderID,
		Timestamp: at,
	}
}

func ResyncEvent(tableID string, at time.Time) ChangeEvent {
	return ChangeEvent{Type: ChangeResync, TableID: tableID, Timestamp: at}
}
