package http

import (
	"errors"
	"net/http"

	"schedule-interpreter/internal/interpreter"
	pkgErrors "schedule-interpreter/pkg/errors"
)

var (
	errMissingSession = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errMissingAction  = pkgErrors.NewHTTPError(http.StatusBadRequest, "action id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, interpreter.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "utterance is empty")
	case errors.Is(err, interpreter.ErrInvalidItem):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, interpreter.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, interpreter.ErrActionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "pending action not found")
	case errors.Is(err, interpreter.ErrNothingToUndo):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing to undo")
	case errors.Is(err, interpreter.ErrNothingToRedo):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing to redo")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
