package http

import (
	"github.com/gin-gonic/gin"

	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/pkg/log"
)

// Handler is the public interface for the interpreter HTTP delivery layer.
type Handler interface {
	LoadDocument(c *gin.Context)
	GetDocument(c *gin.Context)
	Interpret(c *gin.Context)
	ListPending(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
	Undo(c *gin.Context)
	Redo(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc interpreter.UseCase
}

// New creates a new HTTP handler for the interpreter domain.
func New(l log.Logger, uc interpreter.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
