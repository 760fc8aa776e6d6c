// Package reconciler tracks which guests have paid.
//
// Payment truth is never computed locally: state only moves when a guest row
// change arrives from the store (staff confirmation or gateway return).
package reconciler

import (
	"context"
	"sync"

	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentState struct {
	Paid   bool                   `json:"paid"`
	Method entities.PaymentMethod `json:"payment_method,omitempty"`
}

// Step is the checkout screen transition suggested to a guest.
type Step string

const (
	StepCheckout     Step = "checkout"
	StepShareLink    Step = "share_link"
	StepConfirmation Step = "confirmation"
)

// Update is emitted by Run for every guest whose state changed.
type Update struct {
	GuestID string       `json:"guest_id"`
	State   PaymentState `json:"state"`
}

type Reconciler struct {
	mu     sync.RWMutex
	guests map[string]PaymentState
}

func New() *Reconciler {
	return &Reconciler{guests: make(map[string]PaymentState)}
}

// Seed loads the authoritative guest rows, replacing what was known.
func (r *Reconciler) Seed(guests []entities.Guest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guests = make(map[string]PaymentState, len(guests))
	for _, g := range guests {
		r.guests[g.ID] = PaymentState{Paid: g.Paid, Method: g.PaymentMethod}
	}
}

// Apply folds a guest change into the state and reports whether it changed.
// Non-guest events are ignored.
func (r *Reconciler) Apply(ev entities.ChangeEvent) bool {
	if ev.Entity != entities.EntityGuest || ev.ID == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.guests[ev.ID]
	next := prev
	if ev.Paid != nil {
		next.Paid = *ev.Paid
	}
	if ev.PaymentMethod != entities.PaymentMethodNone {
		next.Method = ev.PaymentMethod
	}
	if _, known := r.guests[ev.ID]; known && next == prev {
		return false
	}
	r.guests[ev.ID] = next
	return true
}

func (r *Reconciler) IsGuestPaid(guestID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guests[guestID].Paid
}

func (r *Reconciler) Method(guestID string) entities.PaymentMethod {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guests[guestID].Method
}

// AllRequiredPaid is true when every share with a positive amount is paid.
func (r *Reconciler) AllRequiredPaid(shares []entities.BillShare) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range shares {
		if s.Amount.IsPositive() && !r.guests[s.GuestID].Paid {
			return false
		}
	}
	return true
}

// RemainingToSettle is max(0, grandTotal - sum of paid shares).
func (r *Reconciler) RemainingToSettle(shares []entities.BillShare, grandTotal decimal.Decimal) decimal.Decimal {
	r.mu.RLock()
	paid := decimal.Zero
	for _, s := range shares {
		if r.guests[s.GuestID].Paid {
			paid = paid.Add(s.Amount)
		}
	}
	r.mu.RUnlock()

	remaining := grandTotal.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Next tells the caller where checkout should go from here.
func (r *Reconciler) Next(callerGuestID string, shares []entities.BillShare) Step {
	if r.AllRequiredPaid(shares) {
		return StepConfirmation
	}
	if r.IsGuestPaid(callerGuestID) {
		return StepShareLink
	}
	return StepCheckout
}

// Shares returns shares with their Status taken from the known payment state.
func (r *Reconciler) Shares(shares []entities.BillShare, callerGuestID string) []entities.BillShare {
	out := make([]entities.BillShare, len(shares))
	for i, s := range shares {
		switch {
		case r.IsGuestPaid(s.GuestID):
			s.Status = entities.ShareStatusPagado
		case s.GuestID == callerGuestID:
			s.Status = entities.ShareStatusPendiente
		default:
			s.Status = entities.ShareStatusImpagado
		}
		out[i] = s
	}
	return out
}

// Run applies events from in until ctx is done or in is closed, emitting an
// Update for every effective change.
func (r *Reconciler) Run(ctx context.Context, in <-chan entities.ChangeEvent) <-chan Update {
	out := make(chan Update, 16)
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
				if !r.Apply(ev) {
					continue
				}
				r.mu.RLock()
				st := r.guests[ev.ID]
				r.mu.RUnlock()
				select {
				case out <- Update{GuestID: ev.ID, State: st}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
