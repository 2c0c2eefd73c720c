// Package ratelimit implements a sliding-window request counter keyed by
// client identity. Two stores are provided: an in-process map and a Redis
// sorted set for deployments where several mock instances share a budget.
package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more hit is allowed for a key within the
// current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Factory builds a limiter for one route group's budget. It lets the
// caller pick the store (in-process or Redis) once while each route
// group keeps its own window and hit count.
type Factory func(window time.Duration, maxHits int) Limiter

// MemoryFactory returns a factory producing in-process limiters.
func MemoryFactory() Factory {
	return func(window time.Duration, maxHits int) Limiter {
		return NewMemoryLimiter(window, maxHits)
	}
}

// RedisFactory returns a factory producing Redis-backed limiters
// namespaced under prefix.
func RedisFactory(client *redis.Client, prefix string) Factory {
	return func(window time.Duration, maxHits int) Limiter {
		return NewRedisLimiter(client, prefix, window, maxHits)
	}
}

// MemoryLimiter is an in-process sliding-window limiter.
type MemoryLimiter struct {
	mu      sync.Mutex
	hits    map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time
}

// NewMemoryLimiter creates a limiter allowing maxHits hits per window.
func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		hits:    make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// Allow records a hit for key unless the window is already full.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)

	if hits, exists := l.hits[key]; exists {
		valid := hits[:0]
		for _, hit := range hits {
			if hit.After(windowStart) {
				valid = append(valid, hit)
			}
		}
		l.hits[key] = valid
	}

	if len(l.hits[key]) >= l.maxHits {
		return false, nil
	}

	l.hits[key] = append(l.hits[key], now)
	return true, nil
}

// RedisLimiter keeps the sliding window in a Redis sorted set scored by
// the hit timestamp in nanoseconds.
type RedisLimiter struct {
	client  *redis.Client
	window  time.Duration
	maxHits int
	prefix  string
}

// NewRedisLimiter creates a Redis-backed limiter. Keys are namespaced
// under the given prefix so several limiters can share one database.
func NewRedisLimiter(client *redis.Client, prefix string, window time.Duration, maxHits int) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		window:  window,
		maxHits: maxHits,
		prefix:  prefix,
	}
}

// Allow trims expired hits, counts the remainder and records the new hit
// if the window has room.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	redisKey := l.prefix + ":" + key
	cutoff := strconv.FormatInt(now.Add(-l.window).UnixNano(), 10)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	card := pipe.ZCard(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if card.Val() >= int64(l.maxHits) {
		return false, nil
	}

	member := strconv.FormatInt(now.UnixNano(), 10)
	record := l.client.TxPipeline()
	record.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	record.Expire(ctx, redisKey, l.window)
	if _, err := record.Exec(ctx); err != nil {
		return false, err
	}

	return true, nil
}
