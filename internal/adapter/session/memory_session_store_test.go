package session

import (
	"context"
	"testing"
	"time"

	"comanda/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, entities.Session{DeviceID: "dev-1", TableID: "t1"}, time.Hour))

	got, err := store.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.TableID)

	now = now.Add(time.Hour)
	got, err = store.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Empty(t, got.DeviceID)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	require.NoError(t, store.Save(ctx, entities.Session{DeviceID: "dev-1"}, time.Hour))
	require.NoError(t, store.Delete(ctx, "dev-1"))

	got, err := store.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Empty(t, got.DeviceID)
}
