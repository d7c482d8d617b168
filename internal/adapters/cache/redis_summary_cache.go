package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for serialized simulation summaries.
// Keys are expected to be deterministic request digests computed by
// the caller, so entries never go stale; the TTL only bounds memory.
type RedisSummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{Client: client, TTL: ttl}
}

func (c *RedisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("summary cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get summary cache: key must not be empty")
	}

	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get summary cache: key %q: %w", key, err)
	}
	return payload, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, key string, payload []byte) error {
	if c.Client == nil {
		return errors.New("summary cache: client is nil")
	}
	if key == "" {
		return errors.New("set summary cache: key must not be empty")
	}

	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("set summary cache: key %q: %w", key, err)
	}
	return nil
}
