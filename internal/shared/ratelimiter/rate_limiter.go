// Package ratelimiter provides fixed-window request limiting keyed by client.
package ratelimiter

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request for key fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// window is the per-key counter used by MemoryLimiter.
type window struct {
	count     int
	lastReset time.Time
}

// MemoryLimiter counts requests per key in process memory. It is used when
// Redis is unavailable, so limits are per instance only.
type MemoryLimiter struct {
	limit    int
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

// NewMemoryLimiter returns a limiter allowing limit requests per interval.
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow increments the counter for key and reports whether it is within the limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	if l.limit <= 0 || l.interval <= 0 {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.interval {
		l.sweep(now)
	}

	w, ok := l.windows[key]
	if !ok || now.Sub(w.lastReset) >= l.interval {
		w = &window{lastReset: now}
		l.windows[key] = w
	}
	w.count++
	return w.count <= l.limit
}

// sweep drops windows that have expired. Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.lastReset) >= l.interval {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}

// rateLimitScript increments the key and sets its expiry on first hit.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter shares counters across instances through Redis.
type RedisLimiter struct {
	client   *redis.Client
	script   *redis.Script
	prefix   string
	limit    int
	interval time.Duration
}

// NewRedisLimiter returns a Redis-backed limiter.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, interval time.Duration) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{
		client:   client,
		script:   redis.NewScript(rateLimitScript),
		prefix:   prefix,
		limit:    limit,
		interval: interval,
	}
}

// Allow reports whether key is within the limit. Redis failures allow the
// request.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if l.limit <= 0 || l.interval <= 0 {
		return true
	}
	ttl := l.interval.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{l.prefix + ":" + key}, ttl, l.limit).Int64()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	return allowed == 1
}

// New returns a RedisLimiter when rdb is set, otherwise a MemoryLimiter.
func New(rdb *redis.Client, prefix string, limit int, interval time.Duration) Limiter {
	if rdb != nil {
		return NewRedisLimiter(rdb, prefix, limit, interval)
	}
	return NewMemoryLimiter(limit, interval)
}

// Middleware rejects requests over the limit with 429. Requests are keyed by
// route and client IP.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + ":" + c.ClientIP()
		if !l.Allow(c.Request.Context(), key) {
			slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
