// Package cache provides a read-through cache in front of the mobile-keyed
// stores. The cache is advisory: any cache failure falls back to the
// underlying store.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Cache.Get when the key holds no value.
var ErrMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value cache with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
