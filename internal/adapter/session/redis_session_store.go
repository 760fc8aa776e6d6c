package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "comanda:session:"

// RedisSessionStore keeps one JSON session per device with a TTL.
type RedisSessionStore struct {
	client redis.Cmdable
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client redis.Cmdable) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(deviceID string) string {
	return keyPrefix + deviceID
}

func (s *RedisSessionStore) Save(ctx context.Context, sess entities.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKey(sess.DeviceID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sess.DeviceID, err)
	}
	return nil
}

// Get returns a zero Session when nothing is stored or it expired.
func (s *RedisSessionStore) Get(ctx context.Context, deviceID string) (entities.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(deviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("get session %s: %w", deviceID, err)
	}
	var sess entities.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return entities.Session{}, fmt.Errorf("decode session %s: %w", deviceID, err)
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, deviceID string) error {
	return s.client.Del(ctx, sessionKey(deviceID)).Err()
}
