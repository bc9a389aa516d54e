// Package cache stores rendered chart artifacts.
//
// The render pipeline looks up every artifact by a key derived from the
// chart digest and the output options before drawing anything. Three
// backends implement [Cache]:
//
//   - [FileCache]: entries as JSON files under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP service
//   - [NullCache]: never stores anything, for --no-cache and tests
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the key components;
// [ScopedKeyer] adds a prefix so several deployments can share a store.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (ok == false) and not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero keeps the entry forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by the cache.
	Clear(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}
