// Package realtime carries table change events between writers and the
// websocket streams that follow a table.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const subscriberBuffer = 64

// ChannelName is the Redis Pub/Sub channel of a table.
func ChannelName(tableID string) string {
	return fmt.Sprintf("comanda:table:%s:changes", tableID)
}

// RedisBus fans change events out to every instance through Redis Pub/Sub.
// Delivery is at-least-once per connected subscriber; a subscriber that is
// not connected misses events and must re-read the snapshot.
type RedisBus struct {
	client *redis.Client
}

var (
	_ interfaces.IEventPublisher  = (*RedisBus)(nil)
	_ interfaces.IEventSubscriber = (*RedisBus)(nil)
)

func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Publish(ctx context.Context, ev entities.ChangeEvent) error {
	if ev.TableID == "" {
		return fmt.Errorf("publish %s %s: missing table id", ev.Entity, ev.ID)
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, ChannelName(ev.TableID), data).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, tableID string) (<-chan entities.ChangeEvent, func() error, error) {
	ps := b.client.Subscribe(ctx, ChannelName(tableID))
	// Wait for the subscription to be confirmed so no event published after
	// Subscribe returns is lost.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("subscribe table %s: %w", tableID, err)
	}

	out := make(chan entities.ChangeEvent, subscriberBuffer)
	go func() {
		defer close(out)
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ev, err := decodeEvent(msg.Payload)
				if err != nil {
					zap.L().Warn("[realtime][redis] dropping undecodable event", zap.String("table_id", tableID), zap.Error(err))
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, ps.Close, nil
}

func decodeEvent(payload string) (entities.ChangeEvent, error) {
	var ev entities.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return entities.ChangeEvent{}, err
	}
	if ev.Entity == "" || ev.ID == "" {
		return entities.ChangeEvent{}, fmt.Errorf("incomplete event %q", payload)
	}
	return ev, nil
}
