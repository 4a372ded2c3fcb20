package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

type window struct {
	count int
	end   time.Time
}

// RateLimiter is a fixed-window limiter keyed by client IP.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	entries map[string]*window
	now     func() time.Time
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		period:  period,
		entries: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// purge expired entries so unseen IPs do not accumulate
	if len(l.entries) > 1024 {
		for k, w := range l.entries {
			if now.After(w.end) {
				delete(l.entries, k)
			}
		}
	}

	w, ok := l.entries[key]
	if !ok || now.After(w.end) {
		w = &window{end: now.Add(l.period)}
		l.entries[key] = w
	}

	w.count++
	return w.count <= l.limit
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Demasiados intentos. Intente en un minuto.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRateLimiter allows 20 login attempts per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return NewRateLimiter(20, time.Minute).Middleware()
}
