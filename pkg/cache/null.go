package cache

import (
	"context"
	"time"
)

// NullCache stores nothing; every Get is a miss. It backs --no-cache and
// the "none" backend.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Clear(context.Context) (int, error)                       { return 0, nil }
func (NullCache) Close() error                                             { return nil }

var (
	_ Cache   = NullCache{}
	_ Clearer = NullCache{}
)
