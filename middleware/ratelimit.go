// middleware/ratelimit.go
package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// RateLimiter is a process-local sliding-window limiter. State lives in
// memory only, so limits reset on restart and are per instance. Anything
// unexpected fails open; throttling must never take the API down.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	hits    map[string][]time.Time
	lastGC  time.Time
	nowFunc func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per key per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		hits:    make(map[string][]time.Time),
		nowFunc: time.Now,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	if rl == nil || key == "" {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.nowFunc()
	cutoff := now.Add(-rl.window)

	recent := rl.hits[key][:0]
	for _, t := range rl.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.limit {
		rl.hits[key] = recent
		return false
	}

	rl.hits[key] = append(recent, now)
	rl.maybeGC(now, cutoff)
	return true
}

// maybeGC drops idle keys so the map does not grow without bound. Called with
// the lock held.
func (rl *RateLimiter) maybeGC(now time.Time, cutoff time.Time) {
	if now.Sub(rl.lastGC) < rl.window {
		return
	}
	rl.lastGC = now
	for key, times := range rl.hits {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.hits, key)
		}
	}
}

// LimitByIP throttles by client IP. Used on unauthenticated routes.
func LimitByIP(rl *RateLimiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			utils.HandleError(c, utils.NewTooManyRequestsError(message))
			return
		}
		c.Next()
	}
}

// LimitByUser throttles by the authenticated user, falling back to client IP
// before the auth gate has run.
func LimitByUser(rl *RateLimiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if principal, ok := PrincipalFrom(c); ok {
			key = principal.UserID
		}
		if !rl.Allow(key) {
			utils.HandleError(c, utils.NewTooManyRequestsError(message))
			return
		}
		c.Next()
	}
}
