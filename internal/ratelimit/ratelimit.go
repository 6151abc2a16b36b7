// Package ratelimit provides fixed-window request limiting.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	// Allow records a hit for key and reports whether it is within limit
	// for the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RedisLimiter keeps counters in Redis so limits hold across instances.
type RedisLimiter struct {
	client *redis.Client
	prefix string
}

// NewRedisLimiter creates a limiter on client.
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: "ratelimit:"}
}

// Allow increments the window counter; the first hit starts the window.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	k := l.prefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}
	return count <= int64(limit), nil
}

type window struct {
	count int
	reset time.Time
}

// MemoryLimiter is a single-process limiter. Expired windows are swept at
// most once per window length.
type MemoryLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryLimiter creates an empty in-memory limiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{windows: make(map[string]*window), now: time.Now}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, d time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= d {
		l.sweep(now)
	}

	w, ok := l.windows[key]
	if !ok || !now.Before(w.reset) {
		w = &window{reset: now.Add(d)}
		l.windows[key] = w
	}
	w.count++
	return w.count <= limit, nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.reset) {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}
