// Package cache stores computed tooltip tables keyed by content hash.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//
// All backends implement [Cache] and treat a missing or expired entry as a
// miss, never as an error.
//
// # Keys
//
// A [Keyer] derives keys from the hash of a data view and the options that
// affect its output. [ScopedKeyer] prefixes every key, which isolates
// tenants sharing one Redis.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get returns the stored bytes and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Usage describes how much a backend currently stores.
type Usage struct {
	Entries int
	Bytes   int64
}

// Inspector is implemented by backends that can report their [Usage].
type Inspector interface {
	Usage(ctx context.Context) (Usage, error)
}
