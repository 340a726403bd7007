package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPRateLimiter hands out one token bucket per client key.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with
// the given burst for every key.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  10 * time.Minute,
	}
}

// Allow reports whether a request for key may proceed now.
func (l *IPRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Prune drops buckets that have been idle longer than the idle TTL and
// returns how many were removed.
func (l *IPRateLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.idleTTL)
	removed := 0
	for key, v := range l.limiters {
		if v.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}

	return removed
}
