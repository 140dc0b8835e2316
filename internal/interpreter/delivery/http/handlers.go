package http

import (
	"github.com/gin-gonic/gin"

	"schedule-interpreter/pkg/response"
)

// LoadDocument godoc
// @Summary     Load a schedule
// @Description Replaces the session's schedule, assigns aliases and clears history and pending actions.
// @Tags        Interpreter
// @Accept      json
// @Produce     json
// @Param       session_id path string          true "Session ID"
// @Param       body       body loadDocumentReq true "Schedule items"
// @Success     200 {object} sessionDocumentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{session_id}/document [POST]
func (h *handler) LoadDocument(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processLoadDocumentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.LoadDocument(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LoadDocument: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDocumentResp(output))
}

// GetDocument godoc
// @Summary     Get the current schedule
// @Description Returns the current schedule snapshot with aliases and undo/redo availability.
// @Tags        Interpreter
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} sessionDocumentResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{session_id}/document [GET]
func (h *handler) GetDocument(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetDocument(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDocument: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDocumentResp(output))
}

// Interpret godoc
// @Summary     Interpret an utterance
// @Description Parses a Croatian voice command. Schedule changes are queued for confirmation and returned with a preview.
// @Description Utterances that match no command return status no_match with fallback=true.
// @Tags        Interpreter
// @Accept      json
// @Produce     json
// @Param       session_id path string       true "Session ID"
// @Param       body       body interpretReq true "Utterance"
// @Success     200 {object} interpretResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions/{session_id}/utterances [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Interpret(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInterpretResp(output))
}

// ListPending godoc
// @Summary     List pending actions
// @Description Returns proposed actions awaiting confirmation, newest first.
// @Tags        Interpreter
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} pendingResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{session_id}/pending [GET]
func (h *handler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListPending(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPending: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPendingResp(output))
}

// Confirm godoc
// @Summary     Confirm a pending action
// @Description Applies the action to the current schedule and commits it to history.
// @Tags        Interpreter
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Param       action_id  path string true "Action ID"
// @Success     200 {object} applyResp
// @Failure     404 {object} response.Resp "Session or action not found"
// @Router      /api/v1/sessions/{session_id}/pending/{action_id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processActionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Confirm(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newApplyResp(output))
}

// Cancel godoc
// @Summary     Cancel a pending action
// @Description Drops the action without applying it and returns the remaining queue.
// @Tags        Interpreter
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Param       action_id  path string true "Action ID"
// @Success     200 {object} pendingResp
// @Failure     404 {object} response.Resp "Session or action not found"
// @Router      /api/v1/sessions/{session_id}/pending/{action_id}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processActionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cancel(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPendingResp(output))
}

// Undo godoc
// @Summary     Undo the last committed change
// @Tags        Interpreter
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} sessionDocumentResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     409 {object} response.Resp "Nothing to undo"
// @Router      /api/v1/sessions/{session_id}/undo [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Undo(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Undo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDocumentResp(output))
}

// Redo godoc
// @Summary     Redo the last undone change
// @Tags        Interpreter
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} sessionDocumentResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     409 {object} response.Resp "Nothing to redo"
// @Router      /api/v1/sessions/{session_id}/redo [POST]
func (h *handler) Redo(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Redo(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Redo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionDocumentResp(output))
}
