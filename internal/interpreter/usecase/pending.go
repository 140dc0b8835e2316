package usecase

import (
	"context"
	"fmt"
	"time"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/schedule"
)

// ListPending returns the session's pending actions.
func (uc *implUseCase) ListPending(ctx context.Context, sc model.Scope) (interpreter.PendingOutput, error) {
	s, err := uc.lookup(sc.SessionID)
	if err != nil {
		return interpreter.PendingOutput{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return interpreter.PendingOutput{Actions: s.queue.List()}, nil
}

// Confirm applies the pending action and commits the new document.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, input interpreter.ActionInput) (interpreter.ApplyOutput, error) {
	s, err := uc.lookup(sc.SessionID)
	if err != nil {
		return interpreter.ApplyOutput{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.queue.Get(input.ActionID); !ok {
		return interpreter.ApplyOutput{}, fmt.Errorf("%w: %s", interpreter.ErrActionNotFound, input.ActionID)
	}
	return uc.confirm(ctx, sc, s, input.ActionID, uc.cfg.Clock()), nil
}

// Cancel drops the pending action.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, input interpreter.ActionInput) (interpreter.PendingOutput, error) {
	s, err := uc.lookup(sc.SessionID)
	if err != nil {
		return interpreter.PendingOutput{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.queue.Cancel(input.ActionID) {
		return interpreter.PendingOutput{}, fmt.Errorf("%w: %s", interpreter.ErrActionNotFound, input.ActionID)
	}
	uc.l.Infof(ctx, "%s: session=%s cancelled %s", LogPrefixCancel, sc.SessionID, input.ActionID)
	return interpreter.PendingOutput{Actions: s.queue.List()}, nil
}

// confirm runs the queued command through the engine. A stale target is
// reported in the output and nothing is committed. The caller holds s.mu.
func (uc *implUseCase) confirm(ctx context.Context, sc model.Scope, s *session, id string, now time.Time) interpreter.ApplyOutput {
	before := s.history.Current()
	var outcome schedule.Outcome

	action, _ := s.queue.Confirm(id, func(cmd command.Command) {
		outcome = schedule.Apply(before, cmd, now)
		if outcome.OK() {
			s.history.Commit(outcome.Document)
		}
	})

	if !outcome.OK() {
		uc.l.Warnf(ctx, "%s: session=%s action %s not applied: %s", LogPrefixConfirm, sc.SessionID, id, outcome.Failure)
	} else {
		uc.l.Infof(ctx, "%s: session=%s applied %s, %d items changed", LogPrefixConfirm, sc.SessionID, id, len(outcome.Changed))
		uc.pushPatches(ctx, sc, before, outcome.Document)
	}

	return interpreter.ApplyOutput{
		Action:   action,
		Document: s.history.Current(),
		Changed:  outcome.Changed,
		Skipped:  outcome.Skipped,
		Failure:  outcome.Failure,
	}
}
