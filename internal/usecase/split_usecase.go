package usecase

import (
	"context"
	"errors"
	"strings"

	"comanda/internal/domain/entities"
	"comanda/internal/domain/reconciler"
	"comanda/internal/domain/split"
	"comanda/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidSplitMethod = errors.New("invalid split method")
	ErrInvalidSplitAmount = errors.New("invalid split amount")
	ErrSplitIncomplete    = errors.New("split does not cover the bill")
)

// SplitRequest carries the caller and the method-specific parameters.
type SplitRequest struct {
	GuestID      string
	Method       split.Method
	Participants []string
	Assignments  map[string][]string
	Custom       map[string]decimal.Decimal
}

// ISplitUseCase divides the bill of the open order, sent and pending lines, among guests.
//
// Compute is a preview; Confirm stores each guest's individual amount, which
// checkout then uses as the share to pay.
type ISplitUseCase interface {
	Compute(ctx context.Context, tableID string, req SplitRequest) (split.Result, error)
	Confirm(ctx context.Context, tableID string, req SplitRequest) (split.Result, error)
}

type SplitUseCase struct {
	restaurants interfaces.IRestaurantRepository
	menus       interfaces.IMenuRepository
	orders      interfaces.IOrderRepository
	guests      interfaces.IGuestRepository
	items       interfaces.IOrderItemRepository
	publisher   interfaces.IEventPublisher
}

var _ ISplitUseCase = (*SplitUseCase)(nil)

func NewSplitUseCase(
	restaurants interfaces.IRestaurantRepository,
	menus interfaces.IMenuRepository,
	orders interfaces.IOrderRepository,
	guests interfaces.IGuestRepository,
	items interfaces.IOrderItemRepository,
	publisher interfaces.IEventPublisher,
) *SplitUseCase {
	return &SplitUseCase{
		restaurants: restaurants,
		menus:       menus,
		orders:      orders,
		guests:      guests,
		items:       items,
		publisher:   publisher,
	}
}

func (u *SplitUseCase) Compute(ctx context.Context, tableID string, req SplitRequest) (split.Result, error) {
	res, _, err := u.compute(ctx, tableID, req)
	return res, err
}

func (u *SplitUseCase) Confirm(ctx context.Context, tableID string, req SplitRequest) (split.Result, error) {
	res, guests, err := u.compute(ctx, tableID, req)
	if err != nil {
		return split.Result{}, err
	}
	if !res.Complete {
		zap.L().Info("[split][usecase] confirm rejected; incomplete",
			zap.String("table_id", tableID),
			zap.String("difference", res.Difference.String()),
		)
		return split.Result{}, ErrSplitIncomplete
	}

	amounts := make(map[string]decimal.Decimal, len(res.Shares))
	for _, s := range res.Shares {
		amounts[s.GuestID] = s.Amount
	}
	if err := u.guests.SetIndividualAmounts(ctx, amounts); err != nil {
		zap.L().Error("[split][usecase] persist amounts failed", zap.String("table_id", tableID), zap.Error(err))
		return split.Result{}, err
	}
	zap.L().Info("[split][usecase] split confirmed",
		zap.String("table_id", tableID),
		zap.String("method", string(res.Method)),
		zap.String("subtotal", res.Subtotal.String()),
	)

	now := nowUTC()
	events := make([]entities.ChangeEvent, 0, len(guests))
	for _, g := range guests {
		events = append(events, entities.GuestEvent(g, now))
	}
	publish(ctx, u.publisher, events...)
	return res, nil
}

func (u *SplitUseCase) compute(ctx context.Context, tableID string, req SplitRequest) (split.Result, []entities.Guest, error) {
	if !req.Method.Valid() {
		return split.Result{}, nil, ErrInvalidSplitMethod
	}
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return split.Result{}, nil, err
	}
	caller, err := loadGuest(ctx, u.guests, table.ID, req.GuestID)
	if err != nil {
		return split.Result{}, nil, err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return split.Result{}, nil, err
	}
	if !order.IsOpen() {
		return split.Result{}, nil, ErrOrderNotFound
	}

	guests, err := u.guests.ListByTableID(ctx, table.ID)
	if err != nil {
		return split.Result{}, nil, err
	}
	lines, err := u.items.ListByTableID(ctx, table.ID)
	if err != nil {
		return split.Result{}, nil, err
	}
	// The bill covers what was sent plus what is still in the cart.
	lines = currentLines(lines, order.ID)
	menu, err := loadMenu(ctx, u.menus, table.RestaurantID)
	if err != nil {
		return split.Result{}, nil, err
	}

	res, err := split.Compute(split.Input{
		Guests:        guests,
		Lines:         lines,
		Prices:        menu,
		Method:        req.Method,
		CallerGuestID: caller.ID,
		Participants:  trimAll(req.Participants),
		Assignments:   req.Assignments,
		Custom:        req.Custom,
	})
	switch {
	case errors.Is(err, split.ErrNegativeAmount):
		return split.Result{}, nil, ErrInvalidSplitAmount
	case errors.Is(err, split.ErrUnknownMethod):
		return split.Result{}, nil, ErrInvalidSplitMethod
	case err != nil:
		return split.Result{}, nil, err
	}

	r := reconciler.New()
	r.Seed(guests)
	res.Shares = r.Shares(res.Shares, caller.ID)
	return res, guests, nil
}

func trimAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
