package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a shared fixed-window counter store for multi-instance
// deployments. It relies on atomic INCR with a window-length expiry, so all
// instances draw from the same per-identity budget.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store backed by the given Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "ratelimit:",
	}
}

// Check implements Store. A Redis error is returned to the caller, which
// decides whether to fail open.
func (s *RedisStore) Check(ctx context.Context, identity string, cfg Config) (Result, error) {
	key := s.prefix + identity

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// First request in the window owns the expiry.
	if count == 1 {
		if err := s.client.PExpire(ctx, key, cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	ttl, err := s.client.PTTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = cfg.Window
	}
	resetAt := time.Now().Add(ttl)

	remaining := cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   int(count) <= cfg.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
