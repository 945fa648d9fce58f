package chat

import (
	"context"
	"time"

	"github.com/strawfields/strawfields-backend/pkg/redis"
)

// RedisStateStore persists conversation state under sf:chat:<session>
// with a rolling TTL.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore wraps the shared redis client as a StateStore.
func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

func (s *RedisStateStore) Get(ctx context.Context, sessionID string) ([]byte, bool, error) {
	return s.client.GetBytes(ctx, s.client.ChatKey(sessionID))
}

func (s *RedisStateStore) Set(ctx context.Context, sessionID string, raw []byte) error {
	return s.client.Set(ctx, s.client.ChatKey(sessionID), raw, s.ttl)
}

func (s *RedisStateStore) Del(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.client.ChatKey(sessionID))
}
