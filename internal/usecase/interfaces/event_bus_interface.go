package interfaces

import (
	"context"

	"comanda/internal/domain/entities"
)

// IEventPublisher pushes row changes to every subscriber of the table.
// Delivery is at-least-once.
type IEventPublisher interface {
	Publish(ctx context.Context, ev entities.ChangeEvent) error
}

// IEventSubscriber opens a per-table change feed. The channel is closed when
// ctx is done or the subscription is closed. A ChangeResync event means
// earlier events were lost and the table must be reloaded.
type IEventSubscriber interface {
	Subscribe(ctx context.Context, tableID string) (events <-chan entities.ChangeEvent, closeFn func() error, err error)
}
