// Package redis implements cache.Cache on top of a Redis server.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/eazybank-api/internal/cache"
	goredis "github.com/redis/go-redis/v9"
)

// Cache implements cache.Cache using go-redis.
type Cache struct {
	client goredis.UniversalClient
}

// New connects to the Redis server at addr and verifies it with a PING.
func New(ctx context.Context, addr, password string) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Cache{client: client}, nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client goredis.UniversalClient) *Cache {
	return &Cache{client: client}
}

var _ cache.Cache = (*Cache)(nil)

// Get implements cache.Cache.Get
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, cache.ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

// Set implements cache.Cache.Set
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete implements cache.Cache.Delete
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying connections.
func (c *Cache) Close() error {
	return c.client.Close()
}
