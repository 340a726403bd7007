package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vasapolrittideah/streamhub-api/shared/ratelimit"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	limiter := ratelimit.NewIPRateLimiter(0.001, 2)

	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.True(t, limiter.Allow("203.0.113.7"))
	assert.False(t, limiter.Allow("203.0.113.7"))

	// Buckets are independent per key.
	assert.True(t, limiter.Allow("198.51.100.2"))
}

func TestIPRateLimiter_PruneKeepsActiveBuckets(t *testing.T) {
	limiter := ratelimit.NewIPRateLimiter(1, 1)
	limiter.Allow("203.0.113.7")

	assert.Equal(t, 0, limiter.Prune())
}
