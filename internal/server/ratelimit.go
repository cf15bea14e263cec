package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"mentormatch/internal/api"
	"mentormatch/internal/auth"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterTTL   = 3 * time.Minute
	sweepEvery   = time.Minute
	limitedCode  = "RATE_LIMITED"
	limitedError = "rate limit exceeded"
)

// keyFunc picks the bucket a request is charged to.
type keyFunc func(c *gin.Context) string

func byClientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// byUser charges authenticated callers per account, so several mentees behind
// one NAT do not share a bucket. Anonymous requests fall back to the IP.
func byUser(c *gin.Context) string {
	if id, ok := auth.GetUserID(c); ok {
		return "user:" + strconv.Itoa(id)
	}
	return byClientIP(c)
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per key and forgets keys idle for ttl.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// sweep drops idle buckets and reports how many remain.
func (rl *RateLimiter) sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.ttl)
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
	return len(rl.buckets)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for range ticker.C {
		rl.sweep()
	}
}

func limitMiddleware(rps float64, burst int, key keyFunc) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewRateLimiter(rps, burst, limiterTTL)
	go limiter.sweepLoop()

	return func(c *gin.Context) {
		if !limiter.Allow(key(c)) {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(rps)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: limitedError, Code: limitedCode})
			return
		}
		c.Next()
	}
}

func retryAfterSeconds(rps float64) int {
	if rps >= 1 {
		return 1
	}
	return int(1/rps + 0.5)
}

// RateLimitMiddleware is the global per-IP limit. It is disabled when rps is
// not positive.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	return limitMiddleware(rps, burst, byClientIP)
}

// WriteRateLimitMiddleware is the stricter per-account limit placed on
// endpoints that claim slots or start payments. It must run after
// auth.AuthMiddleware.
func WriteRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	return limitMiddleware(rps, burst, byUser)
}
