package tablestate

import (
	"testing"

	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menu = entities.NewMenu([]entities.MenuItem{
	{ID: "A", Price: decimal.NewFromInt(10)},
	{ID: "B", Price: decimal.NewFromInt(4)},
})

func TestAggregateStatus(t *testing.T) {
	assert.Equal(t, entities.BatchStatusCreado, AggregateStatus(nil))
	assert.Equal(t, entities.BatchStatusPreparando, AggregateStatus([]entities.OrderBatch{
		{Status: entities.BatchStatusServido},
		{Status: entities.BatchStatusPreparando},
		{Status: entities.BatchStatusListo},
	}))
	assert.Equal(t, entities.BatchStatusListo, AggregateStatus([]entities.OrderBatch{
		{Status: entities.BatchStatusListo},
		{Status: "BOGUS"},
	}))
}

func TestDerive(t *testing.T) {
	order := &entities.Order{ID: "o1", Status: entities.OrderStatusAbierto}
	lines := []entities.OrderItem{
		{ID: "l1", ItemID: "A", Quantity: 1, GuestID: "g1", IsConfirmed: true, OrderID: "o1"},
		{ID: "l2", ItemID: "B", Quantity: 2, GuestID: "g1"},
		{ID: "l3", ItemID: "B", Quantity: 1, GuestID: "g2"},
	}

	t.Run("menu before anything is sent", func(t *testing.T) {
		v := Derive(Snapshot{Guests: []entities.Guest{{ID: "g1"}}, Lines: lines[1:]}, "g1", menu)
		assert.Equal(t, ScreenMenu, v.Screen)
		assert.True(t, v.HasPending)
		assert.True(t, decimal.NewFromInt(8).Equal(v.GuestPendingTotal))
		assert.True(t, decimal.NewFromInt(12).Equal(v.PendingTotal))
	})

	t.Run("progress once a batch exists", func(t *testing.T) {
		v := Derive(Snapshot{
			Order: order,
			Batches: []entities.OrderBatch{
				{ID: "b2", BatchNumber: 2, Status: entities.BatchStatusPreparando},
				{ID: "b1", BatchNumber: 1, Status: entities.BatchStatusListo},
			},
			Guests: []entities.Guest{{ID: "g1"}},
			Lines:  lines,
		}, "g1", menu)

		assert.Equal(t, ScreenProgress, v.Screen)
		assert.Equal(t, entities.BatchStatusPreparando, v.KitchenStatus)
		require.Len(t, v.Batches, 2)
		assert.Equal(t, "b1", v.Batches[0].ID)
		assert.True(t, decimal.NewFromInt(10).Equal(v.ConfirmedTotal))
		assert.True(t, decimal.NewFromInt(22).Equal(v.GrandTotal))
		require.NotNil(t, v.Guest)
	})

	t.Run("checkout after the split is confirmed", func(t *testing.T) {
		amount := decimal.NewFromInt(10)
		v := Derive(Snapshot{
			Order:   order,
			Batches: []entities.OrderBatch{{ID: "b1", BatchNumber: 1, Status: entities.BatchStatusServido}},
			Guests:  []entities.Guest{{ID: "g1", IndividualAmount: &amount}},
		}, "g1", menu)
		assert.Equal(t, ScreenCheckout, v.Screen)
	})

	t.Run("feedback once the order is paid", func(t *testing.T) {
		paid := &entities.Order{ID: "o1", Status: entities.OrderStatusPagado}
		v := Derive(Snapshot{Order: paid}, "g1", menu)
		assert.Equal(t, ScreenFeedback, v.Screen)
		assert.Equal(t, "o1", v.OrderID)
		assert.Nil(t, v.Guest)
	})
}
