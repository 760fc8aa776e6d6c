// Package split computes each guest's share of the bill.
//
// Four methods are supported: equal (the whole bill divided among the selected
// participants), per_item (every unit of every line assigned to one or more
// guests), per_guest (each guest pays their own lines) and custom (amounts
// typed by hand, reconciled against the bill but never corrected).
//
// Amounts are split to the cent with the remainder handed out one cent at a
// time, so the shares of a fully assigned bill add up to the subtotal exactly.
package split

import (
	"errors"
	"fmt"

	"comanda/internal/domain/cart"
	"comanda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodEqual    Method = "equal"
	MethodPerItem  Method = "per_item"
	MethodPerGuest Method = "per_guest"
	MethodCustom   Method = "custom"
)

func (m Method) Valid() bool {
	switch m {
	case MethodEqual, MethodPerItem, MethodPerGuest, MethodCustom:
		return true
	}
	return false
}

// Tolerance is the largest gap between assigned and actual subtotal that
// still counts as fully assigned.
var Tolerance = decimal.RequireFromString("0.01")

var (
	ErrUnknownMethod  = errors.New("unknown split method")
	ErrNegativeAmount = errors.New("custom amount cannot be negative")
)

// Unit is one quantity-1 slice of a cart line, assignable in per_item mode.
type Unit struct {
	Key     string          `json:"key"`
	LineID  string          `json:"line_id"`
	Index   int             `json:"index"`
	ItemID  string          `json:"item_id"`
	GuestID string          `json:"guest_id"`
	Price   decimal.Decimal `json:"price"`
}

func UnitKey(lineID string, index int) string {
	return fmt.Sprintf("%s#%d", lineID, index)
}

type Input struct {
	Guests        []entities.Guest
	Lines         []entities.OrderItem
	Prices        cart.PriceLookup
	Method        Method
	CallerGuestID string

	// Participants is read by MethodEqual.
	Participants []string
	// Assignments maps UnitKey to guest ids; read by MethodPerItem.
	Assignments map[string][]string
	// Custom maps guest id to amount; read by MethodCustom.
	Custom map[string]decimal.Decimal
}

type Result struct {
	Method           Method               `json:"method"`
	Shares           []entities.BillShare `json:"shares"`
	Subtotal         decimal.Decimal      `json:"subtotal"`
	AssignedSubtotal decimal.Decimal      `json:"assigned_subtotal"`
	Difference       decimal.Decimal      `json:"difference"`
	Complete         bool                 `json:"complete"`
	Units            []Unit               `json:"units"`
}

// Share returns the amount computed for guestID.
func (r Result) Share(guestID string) decimal.Decimal {
	for _, s := range r.Shares {
		if s.GuestID == guestID {
			return s.Amount
		}
	}
	return decimal.Zero
}

func Compute(in Input) (Result, error) {
	units := Explode(in.Lines, in.Prices)
	subtotal := decimal.Zero
	for _, u := range units {
		subtotal = subtotal.Add(u.Price)
	}

	known := make(map[string]bool, len(in.Guests))
	for _, g := range in.Guests {
		known[g.ID] = true
	}

	amounts := make(map[string]decimal.Decimal, len(in.Guests))
	var assigned decimal.Decimal

	switch in.Method {
	case MethodEqual:
		participants := dedupeKnown(in.Participants, known)
		if len(participants) > 0 {
			for i, part := range Allocate(subtotal, len(participants)) {
				amounts[participants[i]] = part
			}
			assigned = subtotal
		}

	case MethodPerItem:
		for _, u := range units {
			assignees := dedupeKnown(in.Assignments[u.Key], known)
			if len(assignees) == 0 {
				continue
			}
			for i, part := range Allocate(u.Price, len(assignees)) {
				amounts[assignees[i]] = amounts[assignees[i]].Add(part)
			}
			assigned = assigned.Add(u.Price)
		}

	case MethodPerGuest:
		for _, u := range units {
			amounts[u.GuestID] = amounts[u.GuestID].Add(u.Price)
		}
		assigned = subtotal

	case MethodCustom:
		for guestID, amount := range in.Custom {
			if amount.IsNegative() {
				return Result{}, fmt.Errorf("%w: guest %s", ErrNegativeAmount, guestID)
			}
			if !known[guestID] {
				continue
			}
			amounts[guestID] = amount
			assigned = assigned.Add(amount)
		}

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, in.Method)
	}

	shares := make([]entities.BillShare, 0, len(in.Guests))
	for _, g := range in.Guests {
		status := entities.ShareStatusImpagado
		if g.ID == in.CallerGuestID {
			status = entities.ShareStatusPendiente
		}
		shares = append(shares, entities.BillShare{GuestID: g.ID, Amount: amounts[g.ID], Status: status})
	}

	diff := assigned.Sub(subtotal)
	return Result{
		Method:           in.Method,
		Shares:           shares,
		Subtotal:         subtotal,
		AssignedSubtotal: assigned,
		Difference:       diff,
		Complete:         in.Method == MethodPerGuest || diff.Abs().LessThan(Tolerance),
		Units:            units,
	}, nil
}

// Explode turns every line into quantity-1 units carrying the unit price.
func Explode(lines []entities.OrderItem, prices cart.PriceLookup) []Unit {
	var units []Unit
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		price := decimal.Zero
		if prices != nil {
			if p, ok := prices.Price(l.ItemID); ok {
				price = p
			}
		}
		for i := 0; i < l.Quantity; i++ {
			units = append(units, Unit{
				Key:     UnitKey(l.ID, i),
				LineID:  l.ID,
				Index:   i,
				ItemID:  l.ItemID,
				GuestID: l.GuestID,
				Price:   price,
			})
		}
	}
	return units
}

// Allocate splits amount into n parts that differ by at most one cent and
// add up to amount exactly. Sub-cent residue goes to the first part.
func Allocate(amount decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	cents := amount.Shift(2)
	whole := cents.Floor()
	residue := cents.Sub(whole)

	count := decimal.NewFromInt(int64(n))
	base := whole.Div(count).Floor()
	rem := whole.Sub(base.Mul(count)).IntPart()

	parts := make([]decimal.Decimal, n)
	for i := range parts {
		c := base
		if int64(i) < rem {
			c = c.Add(decimal.NewFromInt(1))
		}
		if i == 0 {
			c = c.Add(residue)
		}
		parts[i] = c.Shift(-2)
	}
	return parts
}

func dedupeKnown(ids []string, known map[string]bool) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
