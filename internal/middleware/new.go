package middleware

import (
	"schedule-interpreter/pkg/log"
	"schedule-interpreter/pkg/ratelimit"
)

const (
	RequestIDHeader = "X-Request-ID"
	SessionIDParam  = "session_id"
)

type Middleware struct {
	l       log.Logger
	limiter *ratelimit.Limiter
}

// New creates the middleware set. A nil limiter disables rate limiting.
func New(l log.Logger, limiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
