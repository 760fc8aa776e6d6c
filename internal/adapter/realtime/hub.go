package realtime

import (
	"context"
	"sync"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Hub is an in-process bus with one room per table. It serves a single
// instance deployment and tests.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*hubClient]struct{}
}

type hubClient struct {
	ch     chan entities.ChangeEvent
	gap    chan struct{}
	once   sync.Once
	closed chan struct{}
}

var (
	_ interfaces.IEventPublisher  = (*Hub)(nil)
	_ interfaces.IEventSubscriber = (*Hub)(nil)
)

func NewHub() *Hub {
	return &Hub{rooms: map[string]map[*hubClient]struct{}{}}
}

// Publish never blocks. A subscriber whose buffer is full misses the event
// and is sent a resync marker instead.
func (h *Hub) Publish(_ context.Context, ev entities.ChangeEvent) error {
	for _, c := range h.list(ev.TableID) {
		select {
		case <-c.closed:
		case c.ch <- ev:
		default:
			select {
			case c.gap <- struct{}{}:
			default:
			}
			zap.L().Warn("[realtime][hub] subscriber lagging, event dropped",
				zap.String("table_id", ev.TableID),
				zap.String("entity", string(ev.Entity)),
			)
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, tableID string) (<-chan entities.ChangeEvent, func() error, error) {
	c := &hubClient{
		ch:     make(chan entities.ChangeEvent, subscriberBuffer),
		gap:    make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
	h.add(tableID, c)

	out := make(chan entities.ChangeEvent, subscriberBuffer)
	go func() {
		defer close(out)
		defer h.remove(tableID, c)
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.closed:
				return
			case <-c.gap:
				// The snapshot taken on resync supersedes whatever is buffered.
				c.drain()
				select {
				case out <- entities.ResyncEvent(tableID, time.Now().UTC()):
				case <-ctx.Done():
					return
				case <-c.closed:
					return
				}
			case ev := <-c.ch:
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-c.closed:
					return
				}
			}
		}
	}()

	closeFn := func() error {
		c.once.Do(func() { close(c.closed) })
		h.remove(tableID, c)
		return nil
	}
	return out, closeFn, nil
}

func (c *hubClient) drain() {
	for {
		select {
		case <-c.ch:
		default:
			return
		}
	}
}

// Subscribers returns how many streams follow the table.
func (h *Hub) Subscribers(tableID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[tableID])
}

func (h *Hub) add(tableID string, c *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[tableID]
	if room == nil {
		room = map[*hubClient]struct{}{}
		h.rooms[tableID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) remove(tableID string, c *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[tableID]
	if room == nil {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, tableID)
	}
}

func (h *Hub) list(tableID string) []*hubClient {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room := h.rooms[tableID]
	out := make([]*hubClient, 0, len(room))
	for c := range room {
		out = append(out, c)
	}
	return out
}
