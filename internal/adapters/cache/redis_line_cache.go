package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transit-route-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisLineCache is a Redis-backed cache for per-line connectivity feeds.
// Line topology changes rarely, so cached entries carry a generous TTL and
// save one upstream request per line on every network assembly.
type RedisLineCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLineCache(client *redis.Client, ttl time.Duration) *RedisLineCache {
	return &RedisLineCache{client: client, ttl: ttl}
}

func lineKey(line int) string {
	return fmt.Sprintf("tube:line:%d", line)
}

// Get returns the cached connectivity rows for a line. The second result is
// false on a cache miss.
func (c *RedisLineCache) Get(ctx context.Context, line int) ([]ports.LineConnection, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("line cache: redis client is nil")
	}

	payload, err := c.client.Get(ctx, lineKey(line)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("line cache: get line %d: %w", line, err)
	}

	var connections []ports.LineConnection
	if err := json.Unmarshal(payload, &connections); err != nil {
		return nil, false, fmt.Errorf("line cache: decode line %d: %w", line, err)
	}

	return connections, true, nil
}

// Put stores the connectivity rows for a line.
func (c *RedisLineCache) Put(ctx context.Context, line int, connections []ports.LineConnection) error {
	if c.client == nil {
		return errors.New("line cache: redis client is nil")
	}

	payload, err := json.Marshal(connections)
	if err != nil {
		return fmt.Errorf("line cache: encode line %d: %w", line, err)
	}

	if err := c.client.Set(ctx, lineKey(line), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("line cache: set line %d: %w", line, err)
	}

	return nil
}
