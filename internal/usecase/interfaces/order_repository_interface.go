package interfaces

import (
	"context"
	"errors"

	"comanda/internal/domain/batch"
	"comanda/internal/domain/entities"
)

// ErrConflict is returned when a conditional write loses against a
// concurrent writer (stale version or unexpected current status).
var ErrConflict = errors.New("conditional write conflict")

// IOrderRepository abstracts DynamoDB persistence for orders and their batches.
//
// The service must be able to:
//   - find or create the single open order of a table (Create fails with
//     ErrConflict while another order of the table is open)
//   - apply a send plan atomically (batch + confirmed lines + order total)
//   - move a batch status forward from the kitchen side
//   - close the order once every required share is paid
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetLatestByTableID(ctx context.Context, tableID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, expectedVersion int64) (entities.Order, error)

	SendBatch(ctx context.Context, plan batch.SendPlan) error
	GetBatch(ctx context.Context, id string) (entities.OrderBatch, error)
	ListBatches(ctx context.Context, orderID string) ([]entities.OrderBatch, error)
	UpdateBatchStatus(ctx context.Context, id string, from, to entities.BatchStatus) (entities.OrderBatch, error)
}
