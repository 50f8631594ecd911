// Package cache stores rendered plan bytes keyed by content hashes.
//
// Rendering is deterministic: the same plot spec, standards and render
// options always produce the same pixels. The pipeline exploits that by
// caching encoded artifacts under a hash of their inputs, so repeated
// requests skip the drawing pass while still writing uniquely named
// files.
package cache

import (
	"context"
	"time"
)

// TTLRender is how long cached render bytes stay valid. Renders are
// pure functions of their key, so the TTL only bounds disk usage.
const TTLRender = 7 * 24 * time.Hour

// Cache is the minimal byte cache the pipeline needs.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// NullCache is a no-op cache that never stores anything. Used when
// caching is disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
