package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/pkg/log"
	"schedule-interpreter/pkg/ratelimit"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	startedAt   time.Time

	// Interpreter domain
	interpreterUC interpreter.UseCase
	limiter       *ratelimit.Limiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	InterpreterUC interpreter.UseCase
	// Limiter is optional; nil disables per-session rate limiting.
	Limiter *ratelimit.Limiter
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		startedAt:     time.Now(),
		interpreterUC: cfg.InterpreterUC,
		limiter:       cfg.Limiter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.interpreterUC == nil {
		return errors.New("interpreter use case is required")
	}
	return nil
}
