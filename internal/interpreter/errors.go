package interpreter

import "errors"

// Domain-specific errors for the interpreter package.
var (
	ErrEmptyInput      = errors.New("utterance is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrActionNotFound  = errors.New("pending action not found")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
	ErrInvalidItem     = errors.New("invalid schedule item")
)
