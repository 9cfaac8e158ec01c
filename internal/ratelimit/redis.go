package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a CounterStore shared across application instances. INCR is
// atomic on the server, so concurrent requests for the same actor cannot
// lose updates.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Increment(ctx context.Context, key string, lifetime time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, lifetime)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("incrementing redis counter: %w", err)
	}

	return incr.Val(), nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, "throttle:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("deleting redis counter: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scanning redis counters: %w", err)
	}

	return nil
}
