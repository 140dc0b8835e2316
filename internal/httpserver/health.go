package httpserver

import (
	"time"

	"schedule-interpreter/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "schedule-interpreter"
	ServiceVersion = "1.0.0"
)

// healthCheck identifies the running build.
// @Summary Health Check
// @Description Service name, version and environment
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
	})
}

// readyCheck reports the interpreter session cache and the calendar sink.
// @Summary Readiness Check
// @Description Session cache usage, seed document and calendar sink status
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	st := srv.interpreterUC.Stats(c.Request.Context())
	response.OK(c, gin.H{
		"status":           "ready",
		"sessions":         st.Sessions,
		"session_capacity": st.SessionCapacity,
		"session_ttl":      st.SessionTTL.String(),
		"seeded":           st.Seeded,
		"calendar_sink":    st.SinkConfigured,
		"rate_limited":     srv.limiter != nil,
	})
}

// liveCheck only answers while the process serves requests.
// @Summary Liveness Check
// @Description Process uptime
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "alive",
		"uptime": time.Since(srv.startedAt).Round(time.Second).String(),
	})
}
