package http

import (
	"github.com/gin-gonic/gin"

	"schedule-interpreter/internal/middleware"
	"schedule-interpreter/internal/model"
)

// UserIDHeader optionally identifies the user behind a session in logs.
const UserIDHeader = "X-User-ID"

// processScope reads the session scope from the path.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc := model.Scope{
		SessionID: c.Param(middleware.SessionIDParam),
		UserID:    c.GetHeader(UserIDHeader),
	}
	if sc.SessionID == "" {
		return sc, errMissingSession
	}
	return sc, nil
}

// processLoadDocumentReq binds and validates the document body.
func (h *handler) processLoadDocumentReq(c *gin.Context) (model.Scope, loadDocumentReq, error) {
	var req loadDocumentReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processInterpretReq binds and validates the utterance body.
func (h *handler) processInterpretReq(c *gin.Context) (model.Scope, interpretReq, error) {
	var req interpretReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}

// processActionReq reads the action id path param.
func (h *handler) processActionReq(c *gin.Context) (model.Scope, actionReq, error) {
	req := actionReq{ActionID: c.Param("action_id")}
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	return sc, req, req.validate()
}
