package interfaces

import (
	"context"
	"time"

	"comanda/internal/domain/entities"
)

// ISessionStore persists the device-scoped session. Get returns a zero
// Session and a nil error when nothing is stored.
type ISessionStore interface {
	Save(ctx context.Context, s entities.Session, ttl time.Duration) error
	Get(ctx context.Context, deviceID string) (entities.Session, error)
	Delete(ctx context.Context, deviceID string) error
}
