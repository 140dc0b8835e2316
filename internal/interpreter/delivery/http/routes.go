package http

import (
	"github.com/gin-gonic/gin"

	"schedule-interpreter/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every session
// route is rate limited per session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions/:"+middleware.SessionIDParam, mw.RateLimit())
	{
		sessions.POST("/document", h.LoadDocument)
		sessions.GET("/document", h.GetDocument)
		sessions.POST("/utterances", h.Interpret)
		sessions.GET("/pending", h.ListPending)
		sessions.POST("/pending/:action_id/confirm", h.Confirm)
		sessions.POST("/pending/:action_id/cancel", h.Cancel)
		sessions.POST("/undo", h.Undo)
		sessions.POST("/redo", h.Redo)
	}
}
