// Package ratelimit provides a Redis-backed fixed-window request limiter
// for the HTTP API. The counter lives in Redis so the limit holds across
// replicas; the in-memory stores themselves stay single-process.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campaign-docs/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the per-client counter and stamps the window
// TTL on first hit. PTTL is re-checked so a counter that somehow lost its
// TTL cannot lock a client out forever.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
else
  if redis.call('PTTL', KEYS[1]) < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
  end
end
return current
`)

// Limiter counts requests per client within a fixed window.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// New creates a limiter allowing limit requests per window.
func New(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{rdb: rdb, limit: limit, window: window}
}

// Allow reports whether the given key may make another request in the
// current window.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("key is required")
	}
	n, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefixed(key)}, l.window.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n <= l.limit, nil
}

func (l *Limiter) prefixed(key string) string {
	return "ratelimit:" + key
}

// Middleware enforces the limit per client IP. Redis errors fail open:
// the limiter protects capacity, it must not become an outage of its own.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.FromGin(c).Warn("rate limiter unavailable, allowing request", "err", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
