package middleware

import (
	"github.com/gin-gonic/gin"

	"schedule-interpreter/pkg/response"
)

// RateLimit limits requests per session, falling back to the client IP on
// routes without a session.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.Param(SessionIDParam)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
