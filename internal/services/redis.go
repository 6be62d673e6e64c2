package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache provides counter storage using Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return &RedisCache{client: client}, nil
}

// Count reads a counter, a missing key counts as zero
func (c *RedisCache) Count(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Increment increments a counter and starts its expiry on first use
func (c *RedisCache) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && ttl > 0 {
		if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Delete removes a key from cache
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// RedisLoginLimiter blocks a client after MaxAttempts failed sign-ins
// within Window. The window starts at the first failure.
type RedisLoginLimiter struct {
	cache       *RedisCache
	maxAttempts int64
	window      time.Duration
}

// NewRedisLoginLimiter creates a limiter storing counters in cache
func NewRedisLoginLimiter(cache *RedisCache, maxAttempts int, window time.Duration) *RedisLoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &RedisLoginLimiter{cache: cache, maxAttempts: int64(maxAttempts), window: window}
}

func (l *RedisLoginLimiter) key(client string) string {
	return "signature:login_failures:" + client
}

// Blocked reports whether client has reached the attempt limit
func (l *RedisLoginLimiter) Blocked(ctx context.Context, client string) (bool, error) {
	n, err := l.cache.Count(ctx, l.key(client))
	if err != nil {
		return false, fmt.Errorf("read login failures: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// Fail records one failed attempt
func (l *RedisLoginLimiter) Fail(ctx context.Context, client string) error {
	n, err := l.cache.Increment(ctx, l.key(client), l.window)
	if err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	if n == l.maxAttempts {
		log.Printf("Blocking sign-in from %s for %s after %d failures", client, l.window, n)
	}
	return nil
}

// Reset clears the failures of client
func (l *RedisLoginLimiter) Reset(ctx context.Context, client string) error {
	return l.cache.Delete(ctx, l.key(client))
}
