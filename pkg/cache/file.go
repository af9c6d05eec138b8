package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const fileExt = ".entry"

// FileCache keeps one file per entry under a directory, sharded by the
// first byte of the key hash. Writes go through a temp file and rename, so
// concurrent processes never observe a partial entry.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

type fileEntry struct {
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	Data      []byte    `json:"data"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the entry for key. Expired and unreadable entries are
// removed and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e fileEntry
	if json.Unmarshal(raw, &e) != nil || e.Key != key || e.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes the entry for key. A ttl <= 0 never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. A missing key is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Clear removes every entry and returns how many were deleted.
func (c *FileCache) Clear(ctx context.Context) (int, error) {
	n := 0
	err := c.walk(ctx, func(path string, _ fs.FileInfo) error {
		if err := os.Remove(path); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// Usage counts the stored entries and their size on disk.
func (c *FileCache) Usage(ctx context.Context) (Usage, error) {
	var u Usage
	err := c.walk(ctx, func(_ string, info fs.FileInfo) error {
		u.Entries++
		u.Bytes += info.Size()
		return nil
	})
	return u, err
}

func (c *FileCache) walk(ctx context.Context, fn func(path string, info fs.FileInfo) error) error {
	return filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != fileExt {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info)
	})
}

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+fileExt)
}

var (
	_ Cache     = (*FileCache)(nil)
	_ Clearer   = (*FileCache)(nil)
	_ Inspector = (*FileCache)(nil)
)
