package cart

import (
	"fmt"
	"testing"

	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() entities.Menu {
	return entities.NewMenu([]entities.MenuItem{
		{ID: "A", Name: "Milanesa", Price: decimal.NewFromInt(10)},
		{ID: "B", Name: "Flan", Price: decimal.NewFromInt(5)},
	})
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("line-%d", n)
	}
}

func TestAddLineNeverMerges(t *testing.T) {
	c := New("t1", nil, testMenu(), seqIDs())
	l1 := c.AddLine("A", "g1", nil, nil)
	l2 := c.AddLine("A", "g1", nil, nil)

	assert.NotEqual(t, l1.ID, l2.ID)
	assert.Equal(t, 1, l1.Quantity)
	assert.False(t, l1.IsConfirmed)
	assert.Equal(t, "t1", l1.TableID)
	assert.Len(t, c.Lines(), 2)
}

func TestIncrementSimple(t *testing.T) {
	c := New("t1", nil, testMenu(), seqIDs())
	custom := c.AddLine("A", "g1", []string{"queso"}, nil)

	first := c.IncrementSimple("A", "g1")
	assert.NotEqual(t, custom.ID, first.ID, "customized line must not absorb the increment")
	assert.Equal(t, 1, first.Quantity)

	second := c.IncrementSimple("A", "g1")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)

	other := c.IncrementSimple("A", "g2")
	assert.NotEqual(t, first.ID, other.ID)
}

func TestIncrementSimpleSkipsConfirmed(t *testing.T) {
	confirmed := entities.OrderItem{ID: "c1", ItemID: "A", GuestID: "g1", Quantity: 1, IsConfirmed: true}
	c := New("t1", []entities.OrderItem{confirmed}, testMenu(), seqIDs())

	l := c.IncrementSimple("A", "g1")
	assert.NotEqual(t, "c1", l.ID)
	got, _ := c.Line("c1")
	assert.Equal(t, 1, got.Quantity)
}

func TestUpdateLine(t *testing.T) {
	t.Run("quantity to zero removes unconfirmed", func(t *testing.T) {
		c := New("t1", nil, testMenu(), seqIDs())
		l := c.AddLine("A", "g1", nil, nil)
		zero := 0
		_, res, err := c.UpdateLine(l.ID, LineUpdate{Quantity: &zero})
		require.NoError(t, err)
		assert.Equal(t, Removed, res)
		assert.Empty(t, c.Lines())
	})

	t.Run("negative quantity removes unconfirmed", func(t *testing.T) {
		c := New("t1", nil, testMenu(), seqIDs())
		l := c.AddLine("A", "g1", nil, nil)
		neg := -3
		_, res, err := c.UpdateLine(l.ID, LineUpdate{Quantity: &neg})
		require.NoError(t, err)
		assert.Equal(t, Removed, res)
	})

	t.Run("re-customize", func(t *testing.T) {
		c := New("t1", nil, testMenu(), seqIDs())
		l := c.AddLine("A", "g1", nil, nil)
		extras := []string{"huevo"}
		got, res, err := c.UpdateLine(l.ID, LineUpdate{Extras: &extras})
		require.NoError(t, err)
		assert.Equal(t, Updated, res)
		assert.Equal(t, []string{"huevo"}, got.Extras)
		assert.Equal(t, 1, got.Quantity)
	})

	t.Run("confirmed decrement is a no-op", func(t *testing.T) {
		confirmed := entities.OrderItem{ID: "c1", ItemID: "A", GuestID: "g1", Quantity: 2, IsConfirmed: true, BatchID: "b1"}
		c := New("t1", []entities.OrderItem{confirmed}, testMenu(), seqIDs())
		one := 1
		got, res, err := c.UpdateLine("c1", LineUpdate{Quantity: &one})
		require.NoError(t, err)
		assert.Equal(t, Unchanged, res)
		assert.Equal(t, 2, got.Quantity)

		zero := 0
		_, res, err = c.UpdateLine("c1", LineUpdate{Quantity: &zero})
		require.NoError(t, err)
		assert.Equal(t, Unchanged, res)
		still, ok := c.Line("c1")
		require.True(t, ok)
		assert.Equal(t, 2, still.Quantity)
	})

	t.Run("unknown line", func(t *testing.T) {
		c := New("t1", nil, testMenu(), seqIDs())
		_, _, err := c.UpdateLine("nope", LineUpdate{})
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

func TestTotals(t *testing.T) {
	lines := []entities.OrderItem{
		{ID: "1", ItemID: "A", GuestID: "g1", Quantity: 2, IsConfirmed: true},
		{ID: "2", ItemID: "B", GuestID: "g2", Quantity: 1},
		{ID: "3", ItemID: "B", GuestID: "g1", Quantity: 3},
		{ID: "4", ItemID: "gone", GuestID: "g1", Quantity: 4},
	}
	c := New("t1", lines, testMenu(), seqIDs())

	assert.True(t, decimal.NewFromInt(15).Equal(c.TotalPending("g1")))
	assert.True(t, decimal.NewFromInt(5).Equal(c.TotalPending("g2")))
	assert.True(t, decimal.NewFromInt(20).Equal(c.TotalPending("")))
	assert.True(t, decimal.NewFromInt(20).Equal(c.TotalConfirmed()))
	assert.True(t, decimal.NewFromInt(40).Equal(c.GrandTotal()))
	assert.Len(t, c.LinesFor("g1"), 3)
	assert.Len(t, c.Pending(), 3)
}
