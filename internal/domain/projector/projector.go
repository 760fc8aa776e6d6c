// Package projector turns pushed order/batch row changes into user-facing
// signals. It keeps only the last-known status per id; the store stays the
// authority.
package projector

import (
	"context"
	"time"

	"comanda/internal/domain/entities"
)

// ReadyTTL is how long a "ready" toast stays visible.
const ReadyTTL = 6 * time.Second

type SignalKind string

const (
	SignalReady        SignalKind = "ready"
	SignalGoToFeedback SignalKind = "go_to_feedback"
)

type Signal struct {
	Kind        SignalKind `json:"kind"`
	EntityID    string     `json:"entity_id"`
	OrderID     string     `json:"order_id,omitempty"`
	BatchNumber int        `json:"batch_number,omitempty"`
	EmittedAt   time.Time  `json:"emitted_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Projector is not safe for concurrent use; Run gives it a single owner.
type Projector struct {
	now     func() time.Time
	batches map[string]entities.BatchStatus
	orders  map[string]entities.OrderStatus
	active  []Signal
}

func New(now func() time.Time) *Projector {
	if now == nil {
		now = time.Now
	}
	return &Projector{
		now:     now,
		batches: make(map[string]entities.BatchStatus),
		orders:  make(map[string]entities.OrderStatus),
	}
}

// Seed replaces the last-known state with an authoritative snapshot.
// Seeding never emits signals.
func (p *Projector) Seed(order *entities.Order, batches []entities.OrderBatch) {
	p.batches = make(map[string]entities.BatchStatus, len(batches))
	p.orders = make(map[string]entities.OrderStatus)
	for _, b := range batches {
		p.batches[b.ID] = b.Status
	}
	if order != nil && order.ID != "" {
		p.orders[order.ID] = order.Status
	}
}

// Apply folds one event into the projection and returns the signals raised
// by it. Duplicates and regressions are ignored.
func (p *Projector) Apply(ev entities.ChangeEvent) []Signal {
	switch ev.Entity {
	case entities.EntityBatch:
		return p.applyBatch(ev)
	case entities.EntityOrder:
		return p.applyOrder(ev)
	}
	return nil
}

func (p *Projector) BatchStatus(id string) (entities.BatchStatus, bool) {
	s, ok := p.batches[id]
	return s, ok
}

func (p *Projector) OrderStatus(id string) (entities.OrderStatus, bool) {
	s, ok := p.orders[id]
	return s, ok
}

// Active returns the signals that have not expired yet.
func (p *Projector) Active() []Signal {
	now := p.now()
	kept := p.active[:0]
	for _, s := range p.active {
		if s.ExpiresAt == nil || now.Before(*s.ExpiresAt) {
			kept = append(kept, s)
		}
	}
	p.active = kept
	out := make([]Signal, len(kept))
	copy(out, kept)
	return out
}

// Run consumes events until ctx is done or in is closed. The returned
// channel is closed when Run stops.
func (p *Projector) Run(ctx context.Context, in <-chan entities.ChangeEvent) <-chan Signal {
	out := make(chan Signal, 16)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-in:
				if !ok {
					return
				}
				for _, s := range p.Apply(ev) {
					select {
					case out <- s:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return out
}

func (p *Projector) applyBatch(ev entities.ChangeEvent) []Signal {
	next := entities.BatchStatus(ev.Status)
	if next.Rank() == 0 {
		return nil
	}
	prev, known := p.batches[ev.ID]
	if known && next.Rank() <= prev.Rank() {
		return nil
	}
	p.batches[ev.ID] = next
	if next != entities.BatchStatusListo {
		return nil
	}

	now := p.now()
	expires := now.Add(ReadyTTL)
	s := Signal{
		Kind:        SignalReady,
		EntityID:    ev.ID,
		OrderID:     ev.OrderID,
		BatchNumber: ev.BatchNumber,
		EmittedAt:   now,
		ExpiresAt:   &expires,
	}
	p.active = append(p.active, s)
	return []Signal{s}
}

func (p *Projector) applyOrder(ev entities.ChangeEvent) []Signal {
	next := entities.OrderStatus(ev.Status)
	prev := p.orders[ev.ID]
	if prev == entities.OrderStatusPagado || next == prev {
		return nil
	}
	p.orders[ev.ID] = next
	if next != entities.OrderStatusPagado {
		return nil
	}
	s := Signal{Kind: SignalGoToFeedback, EntityID: ev.ID, OrderID: ev.ID, EmittedAt: p.now()}
	p.active = append(p.active, s)
	return []Signal{s}
}
