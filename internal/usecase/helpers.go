package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidTableID   = errors.New("invalid table_id")
	ErrInvalidGuestID   = errors.New("invalid guest_id")
	ErrTableNotFound    = errors.New("table not found")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

var (
	newID  = uuid.NewString
	nowUTC = func() time.Time { return time.Now().UTC() }
)

func loadTable(ctx context.Context, restaurants interfaces.IRestaurantRepository, tableID string) (entities.Table, error) {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return entities.Table{}, ErrInvalidTableID
	}
	t, err := restaurants.GetTableByID(ctx, tableID)
	if err != nil {
		return entities.Table{}, err
	}
	if t.ID == "" {
		return entities.Table{}, ErrTableNotFound
	}
	return t, nil
}

func loadMenu(ctx context.Context, menus interfaces.IMenuRepository, restaurantID string) (entities.Menu, error) {
	items, err := menus.ListItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return entities.NewMenu(items), nil
}

// loadGuest returns the guest when it sits at tableID.
func loadGuest(ctx context.Context, guests interfaces.IGuestRepository, tableID, guestID string) (entities.Guest, error) {
	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return entities.Guest{}, ErrInvalidGuestID
	}
	g, err := guests.GetByID(ctx, guestID)
	if err != nil {
		return entities.Guest{}, err
	}
	if g.ID == "" || g.TableID != tableID {
		return entities.Guest{}, ErrGuestNotFound
	}
	return g, nil
}

// currentLines keeps the table's unconfirmed lines plus the lines confirmed
// into orderID. Lines of earlier orders at the same table are dropped.
func currentLines(lines []entities.OrderItem, orderID string) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		if !l.IsConfirmed || (orderID != "" && l.OrderID == orderID) {
			out = append(out, l)
		}
	}
	return out
}

// publish fans events out to the table subscribers. Delivery failures are
// logged only: the store stays the source of truth and clients re-sync on
// reconnect.
func publish(ctx context.Context, pub interfaces.IEventPublisher, events ...entities.ChangeEvent) {
	if pub == nil {
		return
	}
	for _, ev := range events {
		if err := pub.Publish(ctx, ev); err != nil {
			zap.L().Warn("[events][usecase] publish failed",
				zap.String("table_id", ev.TableID),
				zap.String("entity", string(ev.Entity)),
				zap.String("id", ev.ID),
				zap.Error(err),
			)
		}
	}
}
