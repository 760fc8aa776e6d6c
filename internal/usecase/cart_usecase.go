package usecase

import (
	"context"
	"errors"
	"strings"

	"comanda/internal/domain/cart"
	"comanda/internal/domain/entities"
	"comanda/internal/domain/notes"
	"comanda/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidItemID        = errors.New("invalid item_id")
	ErrInvalidLineID        = errors.New("invalid line_id")
	ErrCartLineNotFound     = errors.New("cart line not found")
	ErrInvalidCustomization = errors.New("invalid customization")
)

type CartTotals struct {
	GuestPending decimal.Decimal
	Pending      decimal.Decimal
	Confirmed    decimal.Decimal
	Grand        decimal.Decimal
}

// ICartUseCase edits the unconfirmed lines of a table.
//
// Confirmed lines are visible through ListLines but never edited here.
type ICartUseCase interface {
	AddLine(ctx context.Context, tableID, guestID, itemID string, extras, removed []string) (entities.OrderItem, error)
	IncrementSimple(ctx context.Context, tableID, guestID, itemID string) (entities.OrderItem, error)
	UpdateLine(ctx context.Context, tableID, lineID string, upd cart.LineUpdate) (entities.OrderItem, cart.UpdateResult, error)
	ListLines(ctx context.Context, tableID, guestID string) ([]entities.OrderItem, error)
	Totals(ctx context.Context, tableID, guestID string) (CartTotals, error)
}

type CartUseCase struct {
	restaurants interfaces.IRestaurantRepository
	menus       interfaces.IMenuRepository
	orders      interfaces.IOrderRepository
	guests      interfaces.IGuestRepository
	items       interfaces.IOrderItemRepository
	publisher   interfaces.IEventPublisher
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(
	restaurants interfaces.IRestaurantRepository,
	menus interfaces.IMenuRepository,
	orders interfaces.IOrderRepository,
	guests interfaces.IGuestRepository,
	items interfaces.IOrderItemRepository,
	publisher interfaces.IEventPublisher,
) *CartUseCase {
	return &CartUseCase{
		restaurants: restaurants,
		menus:       menus,
		orders:      orders,
		guests:      guests,
		items:       items,
		publisher:   publisher,
	}
}

type cartScope struct {
	table entities.Table
	menu  entities.Menu
	cart  *cart.Cart
}

func (u *CartUseCase) load(ctx context.Context, tableID string) (cartScope, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return cartScope{}, err
	}
	menu, err := loadMenu(ctx, u.menus, table.RestaurantID)
	if err != nil {
		return cartScope{}, err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return cartScope{}, err
	}
	orderID := ""
	if order.IsOpen() {
		orderID = order.ID
	}
	lines, err := u.items.ListByTableID(ctx, table.ID)
	if err != nil {
		return cartScope{}, err
	}
	return cartScope{
		table: table,
		menu:  menu,
		cart:  cart.New(table.ID, currentLines(lines, orderID), menu, newID),
	}, nil
}

func (u *CartUseCase) AddLine(ctx context.Context, tableID, guestID, itemID string, extras, removed []string) (entities.OrderItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.OrderItem{}, ErrInvalidItemID
	}
	scope, err := u.load(ctx, tableID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	guest, err := loadGuest(ctx, u.guests, scope.table.ID, guestID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	item, ok := scope.menu[itemID]
	if !ok {
		return entities.OrderItem{}, ErrMenuItemNotFound
	}
	extras, removed = notes.Clean(extras), notes.Clean(removed)
	if err := validateCustomization(item, extras, removed); err != nil {
		return entities.OrderItem{}, err
	}

	line := scope.cart.AddLine(item.ID, guest.ID, extras, removed)
	created, err := u.items.Create(ctx, line)
	if err != nil {
		zap.L().Error("[cart][usecase] add line failed", zap.String("table_id", scope.table.ID), zap.Error(err))
		return entities.OrderItem{}, err
	}
	publish(ctx, u.publisher, entities.ItemEvent(created, entities.ChangeInsert, nowUTC()))
	return created, nil
}

func (u *CartUseCase) IncrementSimple(ctx context.Context, tableID, guestID, itemID string) (entities.OrderItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.OrderItem{}, ErrInvalidItemID
	}
	scope, err := u.load(ctx, tableID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	guest, err := loadGuest(ctx, u.guests, scope.table.ID, guestID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if _, ok := scope.menu[itemID]; !ok {
		return entities.OrderItem{}, ErrMenuItemNotFound
	}

	line := scope.cart.IncrementSimple(itemID, guest.ID)
	var saved entities.OrderItem
	typ := entities.ChangeUpdate
	if line.Quantity > 1 {
		saved, err = u.items.Update(ctx, line)
	} else {
		typ = entities.ChangeInsert
		saved, err = u.items.Create(ctx, line)
	}
	if err != nil {
		zap.L().Error("[cart][usecase] increment failed", zap.String("table_id", scope.table.ID), zap.Error(err))
		return entities.OrderItem{}, mapItemWriteError(err)
	}
	publish(ctx, u.publisher, entities.ItemEvent(saved, typ, nowUTC()))
	return saved, nil
}

// UpdateLine merges upd into an unconfirmed line. A confirmed line comes back
// untouched with cart.Unchanged.
func (u *CartUseCase) UpdateLine(ctx context.Context, tableID, lineID string, upd cart.LineUpdate) (entities.OrderItem, cart.UpdateResult, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.OrderItem{}, cart.Unchanged, ErrInvalidLineID
	}
	if upd.Extras != nil {
		cleaned := notes.Clean(*upd.Extras)
		upd.Extras = &cleaned
	}
	if upd.Removed != nil {
		cleaned := notes.Clean(*upd.Removed)
		upd.Removed = &cleaned
	}

	scope, err := u.load(ctx, tableID)
	if err != nil {
		return entities.OrderItem{}, cart.Unchanged, err
	}
	line, result, err := scope.cart.UpdateLine(lineID, upd)
	if errors.Is(err, cart.ErrLineNotFound) {
		return entities.OrderItem{}, cart.Unchanged, ErrCartLineNotFound
	}
	if err != nil {
		return entities.OrderItem{}, cart.Unchanged, err
	}

	switch result {
	case cart.Updated:
		if item, ok := scope.menu[line.ItemID]; ok {
			if err := validateCustomization(item, line.Extras, line.RemovedIngredients); err != nil {
				return entities.OrderItem{}, cart.Unchanged, err
			}
		}
		line, err = u.items.Update(ctx, line)
	case cart.Removed:
		err = u.items.Delete(ctx, line.ID)
	case cart.Unchanged:
		return line, result, nil
	}
	if err != nil {
		zap.L().Error("[cart][usecase] update line failed",
			zap.String("table_id", scope.table.ID),
			zap.String("line_id", lineID),
			zap.Error(err),
		)
		return entities.OrderItem{}, cart.Unchanged, mapItemWriteError(err)
	}
	publish(ctx, u.publisher, entities.ItemEvent(line, entities.ChangeUpdate, nowUTC()))
	return line, result, nil
}

// ListLines returns the guest's lines, or every current line when guestID is empty.
func (u *CartUseCase) ListLines(ctx context.Context, tableID, guestID string) ([]entities.OrderItem, error) {
	scope, err := u.load(ctx, tableID)
	if err != nil {
		return nil, err
	}
	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return scope.cart.Lines(), nil
	}
	return scope.cart.LinesFor(guestID), nil
}

func (u *CartUseCase) Totals(ctx context.Context, tableID, guestID string) (CartTotals, error) {
	scope, err := u.load(ctx, tableID)
	if err != nil {
		return CartTotals{}, err
	}
	c := scope.cart
	return CartTotals{
		GuestPending: c.TotalPending(strings.TrimSpace(guestID)),
		Pending:      c.TotalPending(""),
		Confirmed:    c.TotalConfirmed(),
		Grand:        c.GrandTotal(),
	}, nil
}

// validateCustomization checks the tokens are encodable and offered by the item.
func validateCustomization(item entities.MenuItem, extras, removed []string) error {
	if len(extras) == 0 && len(removed) == 0 {
		return nil
	}
	if notes.ValidateTokens(extras) != nil || notes.ValidateTokens(removed) != nil {
		return ErrInvalidCustomization
	}
	if item.Customization == nil {
		return ErrInvalidCustomization
	}
	if !subset(extras, item.Customization.IngredientsToAdd) || !subset(removed, item.Customization.IngredientsToRemove) {
		return ErrInvalidCustomization
	}
	return nil
}

func subset(tokens, allowed []string) bool {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[strings.ToLower(strings.TrimSpace(a))] = true
	}
	for _, t := range tokens {
		if !set[strings.ToLower(t)] {
			return false
		}
	}
	return true
}

// mapItemWriteError turns a lost conditional write (the line was confirmed
// or removed meanwhile) into a not-found so the client re-syncs.
func mapItemWriteError(err error) error {
	if errors.Is(err, interfaces.ErrConflict) {
		return ErrCartLineNotFound
	}
	return err
}
