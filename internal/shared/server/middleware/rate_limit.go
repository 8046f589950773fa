package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig bounds request rate per client IP over a fixed window.
type RateLimitConfig struct {
	Limit   int
	Window  time.Duration
	Limiter *WindowLimiter
}

// WindowLimiter counts requests per key inside a fixed window. State lives in
// process memory only; counts reset when the window expires or on restart.
type WindowLimiter struct {
	mu      sync.Mutex
	windows map[string]*requestWindow
	now     func() time.Time
}

type requestWindow struct {
	count int
	start time.Time
}

// NewWindowLimiter builds a limiter. A nil clock defaults to time.Now.
func NewWindowLimiter(now func() time.Time) *WindowLimiter {
	if now == nil {
		now = time.Now
	}
	return &WindowLimiter{
		windows: make(map[string]*requestWindow),
		now:     now,
	}
}

// Allow records one request for key and reports whether it fits within limit
// requests per window. When denied it returns the wait until the window resets.
func (l *WindowLimiter) Allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	if l == nil || limit <= 0 || window <= 0 {
		return true, 0
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= window {
		l.windows[key] = &requestWindow{count: 1, start: now}
		return true, 0
	}
	if w.count < limit {
		w.count++
		return true, 0
	}
	retryAfter := window - now.Sub(w.start)
	if retryAfter <= 0 {
		retryAfter = time.Second
	}
	return false, retryAfter
}

// RateLimit rejects requests exceeding the configured per-IP budget with 429.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limiter == nil {
		cfg.Limiter = NewWindowLimiter(nil)
	}
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.ClientIP())
		allowed, retryAfter := cfg.Limiter.Allow(key, cfg.Limit, cfg.Window)
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := int(retryAfter / time.Millisecond)
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		retryAfterSeconds := (retryAfterMs + 999) / 1000
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":        "Too many roast requests, try again later",
			"retryAfterMs": retryAfterMs,
		})
		c.Abort()
	}
}
