package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transit-route-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisDisruptionCache is a Redis-backed cache for per-date disruption feeds.
// Historical dates never change; callers should not cache "today", whose feed
// is updated through the day.
type RedisDisruptionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDisruptionCache(client *redis.Client, ttl time.Duration) *RedisDisruptionCache {
	return &RedisDisruptionCache{client: client, ttl: ttl}
}

func disruptionKey(date string) string {
	return "tube:disruptions:" + date
}

// Get returns the cached disruptions for a date. The second result is false
// on a cache miss; an empty cached list is a valid hit.
func (c *RedisDisruptionCache) Get(ctx context.Context, date string) ([]domain.Disruption, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("disruption cache: redis client is nil")
	}

	payload, err := c.client.Get(ctx, disruptionKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("disruption cache: get %q: %w", date, err)
	}

	var disruptions []domain.Disruption
	if err := json.Unmarshal(payload, &disruptions); err != nil {
		return nil, false, fmt.Errorf("disruption cache: decode %q: %w", date, err)
	}

	return disruptions, true, nil
}

// Put stores the disruptions for a date.
func (c *RedisDisruptionCache) Put(ctx context.Context, date string, disruptions []domain.Disruption) error {
	if c.client == nil {
		return errors.New("disruption cache: redis client is nil")
	}

	payload, err := json.Marshal(disruptions)
	if err != nil {
		return fmt.Errorf("disruption cache: encode %q: %w", date, err)
	}

	if err := c.client.Set(ctx, disruptionKey(date), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("disruption cache: set %q: %w", date, err)
	}

	return nil
}
