package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidDeviceID    = errors.New("invalid device id")
	ErrInvalidAccessCode  = errors.New("invalid access code")
	ErrInvalidTableNumber = errors.New("invalid table number")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrSessionNotFound    = errors.New("session not found")
)

// DefaultSessionTTL is how long a device keeps its table after the last join.
const DefaultSessionTTL = 24 * time.Hour

// ISessionUseCase resolves a QR/manual entry into a device-scoped session.
//
//   - Join resolves (accessCode, tableNumber) into a restaurant and table
//   - Current restores the session after a reload, dropping it once paid
//   - Leave clears it on explicit logout/restart
type ISessionUseCase interface {
	Join(ctx context.Context, deviceID, accessCode, tableNumber string) (entities.Session, error)
	Current(ctx context.Context, deviceID string) (entities.Session, error)
	Leave(ctx context.Context, deviceID string) error
}

type SessionUseCase struct {
	restaurants interfaces.IRestaurantRepository
	orders      interfaces.IOrderRepository
	store       interfaces.ISessionStore
	ttl         time.Duration
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(restaurants interfaces.IRestaurantRepository, orders interfaces.IOrderRepository, store interfaces.ISessionStore, ttl time.Duration) *SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUseCase{restaurants: restaurants, orders: orders, store: store, ttl: ttl}
}

func (u *SessionUseCase) Join(ctx context.Context, deviceID, accessCode, tableNumber string) (entities.Session, error) {
	deviceID = strings.TrimSpace(deviceID)
	accessCode = strings.TrimSpace(accessCode)
	tableNumber = strings.TrimSpace(tableNumber)
	if deviceID == "" {
		return entities.Session{}, ErrInvalidDeviceID
	}
	if accessCode == "" {
		return entities.Session{}, ErrInvalidAccessCode
	}
	if tableNumber == "" {
		return entities.Session{}, ErrInvalidTableNumber
	}

	restaurant, err := u.restaurants.GetByAccessCode(ctx, accessCode)
	if err != nil {
		return entities.Session{}, err
	}
	if restaurant.ID == "" {
		zap.L().Info("[session][usecase] unknown access code", zap.String("access_code", accessCode))
		return entities.Session{}, ErrRestaurantNotFound
	}
	table, err := u.restaurants.GetTable(ctx, restaurant.ID, tableNumber)
	if err != nil {
		return entities.Session{}, err
	}
	if table.ID == "" {
		zap.L().Info("[session][usecase] unknown table",
			zap.String("restaurant_id", restaurant.ID),
			zap.String("table_number", tableNumber),
		)
		return entities.Session{}, ErrTableNotFound
	}

	s := entities.Session{
		DeviceID:     deviceID,
		AccessCode:   accessCode,
		TableNumber:  tableNumber,
		RestaurantID: restaurant.ID,
		TableID:      table.ID,
		CreatedAt:    nowUTC(),
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return entities.Session{}, err
	}
	if order.IsOpen() {
		s.ActiveOrderID = order.ID
	}

	if err := u.store.Save(ctx, s, u.ttl); err != nil {
		return entities.Session{}, err
	}
	zap.L().Info("[session][usecase] joined",
		zap.String("restaurant_id", s.RestaurantID),
		zap.String("table_id", s.TableID),
		zap.String("active_order_id", s.ActiveOrderID),
	)
	return s, nil
}

func (u *SessionUseCase) Current(ctx context.Context, deviceID string) (entities.Session, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	s, err := u.store.Get(ctx, deviceID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.DeviceID == "" {
		return entities.Session{}, ErrSessionNotFound
	}

	order, err := u.orders.GetLatestByTableID(ctx, s.TableID)
	if err != nil {
		return entities.Session{}, err
	}
	switch {
	case s.ActiveOrderID != "" && order.ID == s.ActiveOrderID && order.Status == entities.OrderStatusPagado:
		zap.L().Info("[session][usecase] order paid; clearing session", zap.String("order_id", order.ID))
		if err := u.store.Delete(ctx, deviceID); err != nil {
			return entities.Session{}, err
		}
		return entities.Session{}, ErrSessionNotFound
	case order.IsOpen() && order.ID != s.ActiveOrderID:
		s.ActiveOrderID = order.ID
		if err := u.store.Save(ctx, s, u.ttl); err != nil {
			return entities.Session{}, err
		}
	}
	return s, nil
}

func (u *SessionUseCase) Leave(ctx context.Context, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return ErrInvalidDeviceID
	}
	return u.store.Delete(ctx, deviceID)
}
