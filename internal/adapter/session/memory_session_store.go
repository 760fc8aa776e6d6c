package session

import (
	"context"
	"sync"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"
)

// MemorySessionStore backs single-instance runs without Redis. Expired
// entries are dropped on read.
type MemorySessionStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	session   entities.Session
	expiresAt time.Time
}

var _ interfaces.ISessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{now: time.Now, entries: map[string]memoryEntry{}}
}

func (s *MemorySessionStore) Save(_ context.Context, sess entities.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.DeviceID] = memoryEntry{session: sess, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, deviceID string) (entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[deviceID]
	if !ok {
		return entities.Session{}, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, deviceID)
		return entities.Session{}, nil
	}
	return e.session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, deviceID)
	return nil
}
