package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures a [RedisCache].
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// Prefix is prepended to every key stored by this cache.
	Prefix string

	// DialTimeout bounds connection setup. Zero uses the client default.
	DialTimeout time.Duration

	// Backoff governs the initial PING. Zero uses [DefaultBackoff].
	Backoff Backoff
}

// RedisCache is a Redis-backed cache for multi-instance deployments.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and verifies the connection with PING,
// retrying transient failures.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	backoff := cfg.Backoff
	if backoff.Attempts == 0 {
		backoff = DefaultBackoff
	}
	err := backoff.Retry(ctx, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return Retryable(fmt.Errorf("%w: ping %s: %v", ErrNetwork, cfg.Addr, err))
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client, prefix: cfg.Prefix}, nil
}

// Get retrieves a value from Redis. A missing key is a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrNetwork, err)
	}
	return data, true, nil
}

// Set stores a value in Redis.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrNetwork, err)
	}
	return nil
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrNetwork, err)
	}
	return nil
}

// Clear deletes every key under the cache prefix and returns how many were
// removed. It uses SCAN, so it is safe on a shared instance.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	n := 0
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return n, fmt.Errorf("%w: del: %v", ErrNetwork, err)
		}
		n++
	}
	if err := iter.Err(); err != nil {
		return n, fmt.Errorf("%w: scan: %v", ErrNetwork, err)
	}
	return n, nil
}

// Close closes the Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
