package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedule-interpreter/pkg/log"
)

// RequestID reuses the caller's X-Request-ID or mints one, echoes it back and
// stores it in the request context so every log line carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
