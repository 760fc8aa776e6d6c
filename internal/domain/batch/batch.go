// Package batch plans kitchen sends ("envíos") and guards batch status moves.
package batch

import (
	"time"

	"comanda/internal/domain/cart"
	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// SendPlan is everything a send writes, applied atomically by the store.
type SendPlan struct {
	Batch           entities.OrderBatch
	Lines           []entities.OrderItem
	Order           entities.Order
	ExpectedVersion int64
	Added           decimal.Decimal
}

// Plan prepares the next batch for order from the table lines.
//
// It returns false when no unconfirmed line with a positive quantity exists.
// The order total is recomputed from every confirmed line of the order plus
// the lines being sent, never accumulated onto the stored total.
func Plan(
	order entities.Order,
	existingBatches int,
	lines []entities.OrderItem,
	prices cart.PriceLookup,
	newID func() string,
	now time.Time,
) (SendPlan, bool) {
	batch := entities.OrderBatch{
		ID:          newID(),
		OrderID:     order.ID,
		BatchNumber: existingBatches + 1,
		Status:      entities.BatchStatusPreparando,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	total := decimal.Zero
	added := decimal.Zero
	var sent []entities.OrderItem
	for _, l := range lines {
		switch {
		case l.IsConfirmed && l.OrderID == order.ID:
			total = total.Add(cart.LineTotal(prices, l))
		case !l.IsConfirmed && l.Quantity > 0:
			l.IsConfirmed = true
			l.BatchID = batch.ID
			l.OrderID = order.ID
			sent = append(sent, l)
			added = added.Add(cart.LineTotal(prices, l))
		}
	}
	if len(sent) == 0 {
		return SendPlan{}, false
	}

	updated := order
	updated.TotalAmount = total.Add(added)
	updated.Version = order.Version + 1
	updated.UpdatedAt = now

	return SendPlan{
		Batch:           batch,
		Lines:           sent,
		Order:           updated,
		ExpectedVersion: order.Version,
		Added:           added,
	}, true
}

// CanAdvance reports whether a batch may move from one status to another.
// Only strictly forward moves between known statuses are allowed.
func CanAdvance(from, to entities.BatchStatus) bool {
	if to.Rank() == 0 || from.Rank() == 0 {
		return false
	}
	return to.Rank() > from.Rank()
}
