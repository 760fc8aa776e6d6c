package usecase

import (
	"context"
	"errors"
	"strings"

	"comanda/internal/domain/batch"
	"comanda/internal/domain/entities"
	"comanda/internal/domain/tablestate"
	"comanda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidBatchID         = errors.New("invalid batch_id")
	ErrBatchNotFound          = errors.New("batch not found")
	ErrInvalidBatchStatus     = errors.New("invalid batch status")
	ErrInvalidBatchTransition = errors.New("invalid batch status transition")
	ErrOrderClosed            = errors.New("order already paid")
	ErrSendConflict           = errors.New("concurrent send; retry")
)

// SendResult reports a send. Sent is false when nothing was pending, in which
// case no batch exists and the order is untouched.
type SendResult struct {
	Sent  bool
	Order entities.Order
	Batch entities.OrderBatch
	Lines []entities.OrderItem
}

// IOrderUseCase drives the order of a table and its kitchen batches.
type IOrderUseCase interface {
	EnsureOrder(ctx context.Context, tableID string) (entities.Order, error)
	SendPending(ctx context.Context, tableID string) (SendResult, error)
	Snapshot(ctx context.Context, tableID string) (tablestate.Snapshot, error)
	View(ctx context.Context, tableID, guestID string) (tablestate.View, error)
	AdvanceBatch(ctx context.Context, batchID string, status entities.BatchStatus) (entities.OrderBatch, error)
}

type OrderUseCase struct {
	restaurants interfaces.IRestaurantRepository
	menus       interfaces.IMenuRepository
	orders      interfaces.IOrderRepository
	guests      interfaces.IGuestRepository
	items       interfaces.IOrderItemRepository
	publisher   interfaces.IEventPublisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	restaurants interfaces.IRestaurantRepository,
	menus interfaces.IMenuRepository,
	orders interfaces.IOrderRepository,
	guests interfaces.IGuestRepository,
	items interfaces.IOrderItemRepository,
	publisher interfaces.IEventPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		restaurants: restaurants,
		menus:       menus,
		orders:      orders,
		guests:      guests,
		items:       items,
		publisher:   publisher,
	}
}

// EnsureOrder returns the open order of the table, creating it on first use.
// When another device wins the creation race the winner's order is returned.
func (u *OrderUseCase) EnsureOrder(ctx context.Context, tableID string) (entities.Order, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.ensureOrder(ctx, table)
}

func (u *OrderUseCase) ensureOrder(ctx context.Context, table entities.Table) (entities.Order, error) {
	current, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if current.IsOpen() {
		return current, nil
	}

	guests, err := u.guests.ListByTableID(ctx, table.ID)
	if err != nil {
		return entities.Order{}, err
	}
	now := nowUTC()
	order := entities.Order{
		ID:           newID(),
		TableID:      table.ID,
		RestaurantID: table.RestaurantID,
		Status:       entities.OrderStatusAbierto,
		GuestCount:   len(guests),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.orders.Create(ctx, order)
	if errors.Is(err, interfaces.ErrConflict) {
		zap.L().Info("[order][usecase] order created concurrently; reloading", zap.String("table_id", table.ID))
		winner, rerr := u.orders.GetLatestByTableID(ctx, table.ID)
		if rerr != nil {
			return entities.Order{}, rerr
		}
		if !winner.IsOpen() {
			return entities.Order{}, ErrSendConflict
		}
		return winner, nil
	}
	if err != nil {
		zap.L().Error("[order][usecase] create order failed", zap.String("table_id", table.ID), zap.Error(err))
		return entities.Order{}, err
	}
	zap.L().Info("[order][usecase] order created", zap.String("table_id", table.ID), zap.String("order_id", created.ID))
	publish(ctx, u.publisher, entities.OrderEvent(created, entities.ChangeInsert))
	return created, nil
}

// SendPending confirms every unconfirmed line of the table into a new batch.
func (u *OrderUseCase) SendPending(ctx context.Context, tableID string) (SendResult, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return SendResult{}, err
	}
	zap.L().Info("[order][usecase] send start", zap.String("table_id", table.ID))

	lines, err := u.items.ListByTableID(ctx, table.ID)
	if err != nil {
		return SendResult{}, err
	}
	if !hasPending(lines) {
		zap.L().Info("[order][usecase] nothing pending", zap.String("table_id", table.ID))
		return SendResult{}, nil
	}

	order, err := u.ensureOrder(ctx, table)
	if err != nil {
		return SendResult{}, err
	}
	menu, err := loadMenu(ctx, u.menus, table.RestaurantID)
	if err != nil {
		return SendResult{}, err
	}
	batches, err := u.orders.ListBatches(ctx, order.ID)
	if err != nil {
		return SendResult{}, err
	}

	plan, ok := batch.Plan(order, len(batches), currentLines(lines, order.ID), menu, newID, nowUTC())
	if !ok {
		return SendResult{Order: order}, nil
	}
	if err := u.orders.SendBatch(ctx, plan); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			zap.L().Warn("[order][usecase] send lost race, order or lines changed",
				zap.String("order_id", order.ID),
				zap.Int64("expected_version", plan.ExpectedVersion),
			)
			return SendResult{}, ErrSendConflict
		}
		zap.L().Error("[order][usecase] send failed", zap.String("order_id", order.ID), zap.Error(err))
		return SendResult{}, err
	}

	zap.L().Info("[order][usecase] batch sent",
		zap.String("order_id", order.ID),
		zap.Int("batch_number", plan.Batch.BatchNumber),
		zap.Int("lines", len(plan.Lines)),
		zap.String("total", plan.Order.TotalAmount.String()),
	)
	events := []entities.ChangeEvent{
		entities.BatchEvent(table.ID, plan.Batch, entities.ChangeInsert),
		entities.OrderEvent(plan.Order, entities.ChangeUpdate),
	}
	for _, l := range plan.Lines {
		events = append(events, entities.ItemEvent(l, entities.ChangeUpdate, plan.Batch.CreatedAt))
	}
	publish(ctx, u.publisher, events...)

	return SendResult{Sent: true, Order: plan.Order, Batch: plan.Batch, Lines: plan.Lines}, nil
}

// Snapshot reads the authoritative state of the table. A paid order stays
// visible until the table is cleared so the party can reach the feedback step.
func (u *OrderUseCase) Snapshot(ctx context.Context, tableID string) (tablestate.Snapshot, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return tablestate.Snapshot{}, err
	}
	return u.snapshot(ctx, table)
}

func (u *OrderUseCase) snapshot(ctx context.Context, table entities.Table) (tablestate.Snapshot, error) {
	guests, err := u.guests.ListByTableID(ctx, table.ID)
	if err != nil {
		return tablestate.Snapshot{}, err
	}
	order, err := u.orders.GetLatestByTableID(ctx, table.ID)
	if err != nil {
		return tablestate.Snapshot{}, err
	}

	snap := tablestate.Snapshot{Guests: guests}
	orderID := ""
	if order.IsOpen() || (order.ID != "" && len(guests) > 0) {
		snap.Order = &order
		orderID = order.ID
		snap.Batches, err = u.orders.ListBatches(ctx, order.ID)
		if err != nil {
			return tablestate.Snapshot{}, err
		}
	}
	lines, err := u.items.ListByTableID(ctx, table.ID)
	if err != nil {
		return tablestate.Snapshot{}, err
	}
	snap.Lines = currentLines(lines, orderID)
	return snap, nil
}

func (u *OrderUseCase) View(ctx context.Context, tableID, guestID string) (tablestate.View, error) {
	table, err := loadTable(ctx, u.restaurants, tableID)
	if err != nil {
		return tablestate.View{}, err
	}
	snap, err := u.snapshot(ctx, table)
	if err != nil {
		return tablestate.View{}, err
	}
	menu, err := loadMenu(ctx, u.menus, table.RestaurantID)
	if err != nil {
		return tablestate.View{}, err
	}
	return tablestate.Derive(snap, strings.TrimSpace(guestID), menu), nil
}

// AdvanceBatch moves a batch forward from the kitchen side. Repeating the
// current status is a no-op.
func (u *OrderUseCase) AdvanceBatch(ctx context.Context, batchID string, status entities.BatchStatus) (entities.OrderBatch, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return entities.OrderBatch{}, ErrInvalidBatchID
	}
	if status.Rank() == 0 {
		return entities.OrderBatch{}, ErrInvalidBatchStatus
	}

	current, err := u.orders.GetBatch(ctx, batchID)
	if err != nil {
		return entities.OrderBatch{}, err
	}
	if current.ID == "" {
		return entities.OrderBatch{}, ErrBatchNotFound
	}
	if current.Status == status {
		return current, nil
	}
	if !batch.CanAdvance(current.Status, status) {
		zap.L().Info("[order][usecase] rejected batch transition",
			zap.String("batch_id", batchID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(status)),
		)
		return entities.OrderBatch{}, ErrInvalidBatchTransition
	}

	order, err := u.orders.GetByID(ctx, current.OrderID)
	if err != nil {
		return entities.OrderBatch{}, err
	}
	if order.ID == "" {
		return entities.OrderBatch{}, ErrOrderNotFound
	}

	updated, err := u.orders.UpdateBatchStatus(ctx, batchID, current.Status, status)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.OrderBatch{}, ErrInvalidBatchTransition
	}
	if err != nil {
		return entities.OrderBatch{}, err
	}
	zap.L().Info("[order][usecase] batch advanced",
		zap.String("batch_id", batchID),
		zap.String("status", string(updated.Status)),
	)
	publish(ctx, u.publisher, entities.BatchEvent(order.TableID, updated, entities.ChangeUpdate))
	return updated, nil
}

func hasPending(lines []entities.OrderItem) bool {
	for _, l := range lines {
		if !l.IsConfirmed && l.Quantity > 0 {
			return true
		}
	}
	return false
}
