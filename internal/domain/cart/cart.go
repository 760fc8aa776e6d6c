// Package cart holds the in-memory order lines of a table session.
package cart

import (
	"errors"
	"time"

	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrLineNotFound = errors.New("cart line not found")

// PriceLookup resolves a menu item's unit price.
type PriceLookup interface {
	Price(itemID string) (decimal.Decimal, bool)
}

type UpdateResult int

const (
	Unchanged UpdateResult = iota
	Updated
	Removed
)

// LineUpdate carries the fields to merge into a line; nil means untouched.
type LineUpdate struct {
	Quantity *int
	Extras   *[]string
	Removed  *[]string
}

type Cart struct {
	tableID string
	lines   []entities.OrderItem
	prices  PriceLookup
	newID   func() string
	now     func() time.Time
}

func New(tableID string, lines []entities.OrderItem, prices PriceLookup, newID func() string) *Cart {
	cp := make([]entities.OrderItem, len(lines))
	copy(cp, lines)
	return &Cart{tableID: tableID, lines: cp, prices: prices, newID: newID, now: time.Now}
}

// AddLine always creates a new unconfirmed line with quantity 1.
func (c *Cart) AddLine(itemID, guestID string, extras, removed []string) entities.OrderItem {
	line := entities.OrderItem{
		ID:                 c.newID(),
		TableID:            c.tableID,
		ItemID:             itemID,
		GuestID:            guestID,
		Quantity:           1,
		Extras:             copyOrEmpty(extras),
		RemovedIngredients: copyOrEmpty(removed),
		CreatedAt:          c.now().UTC(),
	}
	c.lines = append(c.lines, line)
	return line
}

// IncrementSimple bumps the guest's unconfirmed, customization-free line for
// itemID, or adds one.
func (c *Cart) IncrementSimple(itemID, guestID string) entities.OrderItem {
	for i := range c.lines {
		l := &c.lines[i]
		if !l.IsConfirmed && l.ItemID == itemID && l.GuestID == guestID && l.IsSimple() {
			l.Quantity++
			return *l
		}
	}
	return c.AddLine(itemID, guestID, nil, nil)
}

// UpdateLine merges upd into the line. Confirmed lines are left untouched;
// an unconfirmed line whose quantity drops to zero or below is removed.
func (c *Cart) UpdateLine(lineID string, upd LineUpdate) (entities.OrderItem, UpdateResult, error) {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return entities.OrderItem{}, Unchanged, ErrLineNotFound
	}
	line := c.lines[idx]
	if line.IsConfirmed {
		return line, Unchanged, nil
	}

	if upd.Quantity != nil {
		line.Quantity = *upd.Quantity
	}
	if upd.Extras != nil {
		line.Extras = copyOrEmpty(*upd.Extras)
	}
	if upd.Removed != nil {
		line.RemovedIngredients = copyOrEmpty(*upd.Removed)
	}

	if line.Quantity <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return line, Removed, nil
	}
	c.lines[idx] = line
	return line, Updated, nil
}

func (c *Cart) Line(lineID string) (entities.OrderItem, bool) {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return entities.OrderItem{}, false
	}
	return c.lines[idx], true
}

func (c *Cart) Lines() []entities.OrderItem {
	out := make([]entities.OrderItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// LinesFor returns confirmed and unconfirmed lines of a guest.
func (c *Cart) LinesFor(guestID string) []entities.OrderItem {
	var out []entities.OrderItem
	for _, l := range c.lines {
		if l.GuestID == guestID {
			out = append(out, l)
		}
	}
	return out
}

// Pending returns the unconfirmed lines with a positive quantity.
func (c *Cart) Pending() []entities.OrderItem {
	var out []entities.OrderItem
	for _, l := range c.lines {
		if !l.IsConfirmed && l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}

// TotalPending sums the unconfirmed lines of guestID; "" sums every guest.
func (c *Cart) TotalPending(guestID string) decimal.Decimal {
	return c.sum(func(l entities.OrderItem) bool {
		return !l.IsConfirmed && (guestID == "" || l.GuestID == guestID)
	})
}

func (c *Cart) TotalConfirmed() decimal.Decimal {
	return c.sum(func(l entities.OrderItem) bool { return l.IsConfirmed })
}

func (c *Cart) GrandTotal() decimal.Decimal {
	return c.sum(func(entities.OrderItem) bool { return true })
}

// LineTotal is price x quantity; unknown items are worth zero.
func LineTotal(prices PriceLookup, l entities.OrderItem) decimal.Decimal {
	if prices == nil || l.Quantity <= 0 {
		return decimal.Zero
	}
	p, ok := prices.Price(l.ItemID)
	if !ok {
		return decimal.Zero
	}
	return p.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (c *Cart) sum(keep func(entities.OrderItem) bool) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		if keep(l) {
			total = total.Add(LineTotal(c.prices, l))
		}
	}
	return total
}

func (c *Cart) indexOf(lineID string) int {
	for i, l := range c.lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

func copyOrEmpty(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
