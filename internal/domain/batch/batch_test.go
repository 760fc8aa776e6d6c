package batch

import (
	"fmt"
	"testing"
	"time"

	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menu = entities.NewMenu([]entities.MenuItem{
	{ID: "A", Price: decimal.NewFromInt(10)},
	{ID: "B", Price: decimal.RequireFromString("5.5")},
})

func ids(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func TestPlanNothingPending(t *testing.T) {
	order := entities.Order{ID: "o1", Status: entities.OrderStatusAbierto}
	lines := []entities.OrderItem{
		{ID: "1", ItemID: "A", Quantity: 1, IsConfirmed: true, OrderID: "o1"},
		{ID: "2", ItemID: "A", Quantity: 0},
	}
	_, ok := Plan(order, 1, lines, menu, ids("b"), time.Now())
	assert.False(t, ok)
}

func TestPlanConfirmsAndRecomputesTotal(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	order := entities.Order{ID: "o1", Status: entities.OrderStatusAbierto, TotalAmount: decimal.NewFromInt(999), Version: 3}
	lines := []entities.OrderItem{
		{ID: "1", ItemID: "A", Quantity: 2, IsConfirmed: true, OrderID: "o1", BatchID: "old"},
		{ID: "2", ItemID: "B", Quantity: 2, GuestID: "g1"},
		{ID: "3", ItemID: "A", Quantity: 1, GuestID: "g2"},
		{ID: "4", ItemID: "A", Quantity: 5, IsConfirmed: true, OrderID: "previous-order"},
	}

	plan, ok := Plan(order, 1, lines, menu, ids("b"), now)
	require.True(t, ok)

	assert.Equal(t, 2, plan.Batch.BatchNumber)
	assert.Equal(t, entities.BatchStatusPreparando, plan.Batch.Status)
	assert.Equal(t, "o1", plan.Batch.OrderID)
	require.Len(t, plan.Lines, 2)
	for _, l := range plan.Lines {
		assert.True(t, l.IsConfirmed)
		assert.Equal(t, plan.Batch.ID, l.BatchID)
		assert.Equal(t, "o1", l.OrderID)
	}
	assert.True(t, decimal.NewFromInt(21).Equal(plan.Added), plan.Added.String())
	assert.True(t, decimal.NewFromInt(41).Equal(plan.Order.TotalAmount), plan.Order.TotalAmount.String())
	assert.Equal(t, int64(3), plan.ExpectedVersion)
	assert.Equal(t, int64(4), plan.Order.Version)
	assert.Equal(t, now, plan.Order.UpdatedAt)
}

func TestBatchNumbersAreSequential(t *testing.T) {
	order := entities.Order{ID: "o1"}
	newID := ids("b")
	var got []int
	for sent := 0; sent < 4; sent++ {
		lines := []entities.OrderItem{{ID: fmt.Sprint(sent), ItemID: "A", Quantity: 1}}
		plan, ok := Plan(order, sent, lines, menu, newID, time.Now())
		require.True(t, ok)
		got = append(got, plan.Batch.BatchNumber)
		order = plan.Order
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestCanAdvance(t *testing.T) {
	assert.True(t, CanAdvance(entities.BatchStatusPreparando, entities.BatchStatusListo))
	assert.True(t, CanAdvance(entities.BatchStatusListo, entities.BatchStatusServido))
	assert.True(t, CanAdvance(entities.BatchStatusPreparando, entities.BatchStatusServido))
	assert.False(t, CanAdvance(entities.BatchStatusListo, entities.BatchStatusPreparando))
	assert.False(t, CanAdvance(entities.BatchStatusListo, entities.BatchStatusListo))
	assert.False(t, CanAdvance(entities.BatchStatusListo, "CANCELADO"))
}
