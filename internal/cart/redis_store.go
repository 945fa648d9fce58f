package cart

import (
	"context"
	"time"

	"github.com/strawfields/strawfields-backend/pkg/redis"
)

// RedisSnapshotStore persists cart snapshots under sf:cart:<session>
// with a rolling TTL.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore wraps the shared redis client as a SnapshotStore.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Get(ctx context.Context, sessionID string) ([]byte, bool, error) {
	return s.client.GetBytes(ctx, s.client.CartKey(sessionID))
}

func (s *RedisSnapshotStore) Set(ctx context.Context, sessionID string, raw []byte) error {
	return s.client.Set(ctx, s.client.CartKey(sessionID), raw, s.ttl)
}

func (s *RedisSnapshotStore) Del(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.client.CartKey(sessionID))
}
