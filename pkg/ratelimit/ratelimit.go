package ratelimit

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	DefaultMaxKeys = 1000
	DefaultTTL     = 5 * time.Minute
)

// ErrLimitExceeded is returned by Allow when a key has used up its budget.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// Limiter keeps one token bucket per key. Idle keys expire after the TTL.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter allowing requestsPerMin per key with a burst of a tenth of that, at least 1.
func New(requestsPerMin int) *Limiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](DefaultMaxKeys, nil, DefaultTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow consumes one token for key.
func (rl *Limiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrLimitExceeded, key)
	}
	return nil
}
