package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const MaxGuestsPerTable = 20

var (
	ErrInvalidGuestCount    = errors.New("invalid guest count")
	ErrGuestsAlreadyCreated = errors.New("guests already created for table")
	ErrTableHasOpenOrder    = errors.New("table has an open order")
)

type IGuestUseCase interface {
	CreateGuests(ctx context.Context, tableID string, count int, hostName string) ([]entities.Guest, error)
	List(ctx context.Context, tableID string) ([]entities.Guest, error)
	ClearTable(ctx context.Context, tableID string) error
}

type GuestUseCase struct {
	restaurants interfaces.IRestaurantRepository
	guests      interfaces.IGuestRepository
	items       interfaces.IOrderItemRepository
	orders      interfaces.IOrderRepository
}

var _ IGuestUseCase = (*GuestUseCase)(nil)

func NewGuestUseCase(
	restaurants interfaces.IRestaurantRepository,
	guests interfaces.IGuestRepository,
	items interfaces.IOrderItemRepository,
	orders interfaces.IOrderRepository,
) *GuestUseCase {
	return &GuestUseCase{restaurants: restaurants, guests: guests, items: items, orders: orders}
}

// CreateGuests registers the party sitting at the table. The first guest is
// the host (the device that started the session); the others get numbered
// default names.
func (u *GuestUseCase) CreateGuests(ctx context.Context, tableID string, count int, hostName string) ([]entities.Guest, error) {
	if count < 1 || count > MaxGuestsPerTable {
		return nil, ErrInvalidGuestCount
	}
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return nil, err
	}

	existing, err := u.guests.ListByTableID(ctx, table.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrGuestsAlreadyCreated
	}

	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		hostName = "Comensal 1"
	}
	now := nowUTC()
	guests := make([]entities.Guest, 0, count)
	for i := 0; i < count; i++ {
		g := entities.Guest{
			ID:        newID(),
			TableID:   table.ID,
			Name:      fmt.Sprintf("Comensal %d", i+1),
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond), // keeps seat order
		}
		if i == 0 {
			g.Name = hostName
			g.IsHost = true
		}
		guests = append(guests, g)
	}

	created, err := u.guests.CreateMany(ctx, guests)
	if err != nil {
		zap.L().Error("[guest][usecase] create failed", zap.String("table_id", table.ID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("[guest][usecase] guests created", zap.String("table_id", table.ID), zap.Int("count", len(created)))
	return created, nil
}

func (u *GuestUseCase) List(ctx context.Context, tableID string) ([]entities.Guest, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return nil, err
	}
	return u.guests.ListByTableID(ctx, table.ID)
}

// ClearTable resets the table for a new party: guests and unsent lines are
// dropped. Refused while an order is still open.
func (u *GuestUseCase) ClearTable(ctx context.Context, tableID string) error {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return err
	}
	if order.IsOpen() {
		return ErrTableHasOpenOrder
	}
	if err := u.items.DeleteUnconfirmedByTableID(ctx, table.ID); err != nil {
		return err
	}
	if err := u.guests.DeleteByTableID(ctx, table.ID); err != nil {
		return err
	}
	zap.L().Info("[guest][usecase] table cleared", zap.String("table_id", table.ID))
	return nil
}
