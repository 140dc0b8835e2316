package usecase

import (
	"context"

	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
)

// Undo steps the session back one committed version.
func (uc *implUseCase) Undo(ctx context.Context, sc model.Scope) (interpreter.DocumentOutput, error) {
	s, err := uc.lookup(sc.SessionID)
	if err != nil {
		return interpreter.DocumentOutput{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.history.Current()
	after, ok := s.history.Undo()
	if !ok {
		return interpreter.DocumentOutput{}, interpreter.ErrNothingToUndo
	}
	uc.l.Infof(ctx, "%s: session=%s undo to version %d", LogPrefixHistory, sc.SessionID, after.Version)
	uc.pushPatches(ctx, sc, before, after)
	return s.documentOutput(), nil
}

// Redo re-applies the next committed version.
func (uc *implUseCase) Redo(ctx context.Context, sc model.Scope) (interpreter.DocumentOutput, error) {
	s, err := uc.lookup(sc.SessionID)
	if err != nil {
		return interpreter.DocumentOutput{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.history.Current()
	after, ok := s.history.Redo()
	if !ok {
		return interpreter.DocumentOutput{}, interpreter.ErrNothingToRedo
	}
	uc.l.Infof(ctx, "%s: session=%s redo to version %d", LogPrefixHistory, sc.SessionID, after.Version)
	uc.pushPatches(ctx, sc, before, after)
	return s.documentOutput(), nil
}
