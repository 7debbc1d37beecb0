package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/supplyhub/internal/query"
)

// Drivers accepted by NewQueryCache.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// New creates a Redis client and checks it answers.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	return client, nil
}

// NewQueryCache returns the collection query cache for driver. The returned
// close func releases the Redis connection, if any.
func NewQueryCache(ctx context.Context, driver, addr string, ttl time.Duration) (query.Cache, func() error, error) {
	switch driver {
	case "", DriverMemory:
		return query.NewMemoryCache(), func() error { return nil }, nil
	case DriverRedis:
		client, err := New(ctx, addr)
		if err != nil {
			return nil, nil, err
		}
		return query.NewRedisCache(client, ttl), client.Close, nil
	}
	return nil, nil, fmt.Errorf("platform/cache: unknown driver %q", driver)
}
