package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/grammar"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/schedule"
)

// Interpret parses an utterance against the session and acts on the result.
//
// Schedule mutations in commit mode are queued and returned with a preview
// of their effect. Preview-mode commands are only previewed. Confirm, cancel,
// undo and redo utterances act on the session directly, and UI commands are
// handed back to the caller unchanged.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input interpreter.InterpretInput) (interpreter.InterpretOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return interpreter.InterpretOutput{}, interpreter.ErrEmptyInput
	}

	now := input.Now
	if now.IsZero() {
		now = uc.cfg.Clock()
	}

	s := uc.getOrCreate(sc.SessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	pc := grammar.Context{
		Aliases:     s.registry.Lookup(),
		DefaultYear: uc.dateMath.DefaultYear(now),
		Today:       uc.dateMath.Today(now),
	}

	cmd, err := uc.parser.Parse(text, pc)
	if err != nil {
		if errors.Is(err, grammar.ErrNoMatch) {
			uc.l.Infof(ctx, "%s: session=%s no match for %q: %v", LogPrefixInterpret, sc.SessionID, text, err)
			return interpreter.InterpretOutput{
				Status:   interpreter.StatusNoMatch,
				Document: s.history.Current(),
				Fallback: true,
				Reason:   err.Error(),
			}, nil
		}
		return interpreter.InterpretOutput{}, err
	}

	uc.l.Debugf(ctx, "%s: session=%s parsed %q as %s", LogPrefixInterpret, sc.SessionID, text, cmd.Kind())

	switch cmd.(type) {
	case command.ConfirmPending:
		return uc.confirmNewest(ctx, sc, s, cmd, now), nil
	case command.CancelPending:
		return uc.cancelNewest(ctx, sc, s, cmd), nil
	case command.Undo:
		return uc.stepHistory(ctx, sc, s, cmd, s.history.Undo, interpreter.StatusUndone), nil
	case command.Redo:
		return uc.stepHistory(ctx, sc, s, cmd, s.history.Redo, interpreter.StatusRedone), nil
	}

	if !command.MutatesSchedule(cmd) {
		return interpreter.InterpretOutput{
			Status:   interpreter.StatusPassthrough,
			Command:  cmd,
			Document: s.history.Current(),
		}, nil
	}

	current := s.history.Current()
	outcome := schedule.Apply(current, cmd, now)

	if command.IsPreview(cmd) {
		return interpreter.InterpretOutput{
			Status:   interpreter.StatusPreviewed,
			Command:  cmd,
			Document: outcome.Document,
			Preview:  true,
			Changed:  outcome.Changed,
			Skipped:  outcome.Skipped,
			Failure:  outcome.Failure,
		}, nil
	}

	if outcome.Failure != schedule.FailureNone {
		uc.l.Warnf(ctx, "%s: session=%s %s not queued: %s", LogPrefixInterpret, sc.SessionID, cmd.Kind(), outcome.Failure)
		return interpreter.InterpretOutput{
			Status:   interpreter.StatusFailed,
			Command:  cmd,
			Document: current,
			Skipped:  outcome.Skipped,
			Failure:  outcome.Failure,
		}, nil
	}

	action := s.queue.Propose(cmd, current)
	uc.l.Infof(ctx, "%s: session=%s proposed %s (%s)", LogPrefixInterpret, sc.SessionID, action.ID, action.Summary)

	return interpreter.InterpretOutput{
		Status:   interpreter.StatusProposed,
		Command:  cmd,
		Action:   &action,
		Document: outcome.Document,
		Preview:  true,
		Changed:  outcome.Changed,
		Skipped:  outcome.Skipped,
		Failure:  outcome.Failure,
	}, nil
}

func (uc *implUseCase) confirmNewest(ctx context.Context, sc model.Scope, s *session, cmd command.Command, now time.Time) interpreter.InterpretOutput {
	newest, ok := s.queue.PeekNewest()
	if !ok {
		return interpreter.InterpretOutput{Status: interpreter.StatusNothingPending, Command: cmd, Document: s.history.Current()}
	}

	applied := uc.confirm(ctx, sc, s, newest.ID, now)
	status := interpreter.StatusApplied
	if applied.Failure != schedule.FailureNone {
		status = interpreter.StatusFailed
	}
	return interpreter.InterpretOutput{
		Status:   status,
		Command:  cmd,
		Action:   &applied.Action,
		Document: applied.Document,
		Changed:  applied.Changed,
		Skipped:  applied.Skipped,
		Failure:  applied.Failure,
	}
}

func (uc *implUseCase) cancelNewest(ctx context.Context, sc model.Scope, s *session, cmd command.Command) interpreter.InterpretOutput {
	newest, ok := s.queue.PeekNewest()
	if !ok {
		return interpreter.InterpretOutput{Status: interpreter.StatusNothingPending, Command: cmd, Document: s.history.Current()}
	}

	s.queue.Cancel(newest.ID)
	uc.l.Infof(ctx, "%s: session=%s cancelled %s", LogPrefixCancel, sc.SessionID, newest.ID)
	return interpreter.InterpretOutput{
		Status:   interpreter.StatusCancelled,
		Command:  cmd,
		Action:   &newest,
		Document: s.history.Current(),
	}
}

func (uc *implUseCase) stepHistory(
	ctx context.Context,
	sc model.Scope,
	s *session,
	cmd command.Command,
	step func() (model.Document, bool),
	status interpreter.Status,
) interpreter.InterpretOutput {
	before := s.history.Current()
	after, ok := step()
	if !ok {
		return interpreter.InterpretOutput{Status: interpreter.StatusFailed, Command: cmd, Document: before}
	}
	uc.pushPatches(ctx, sc, before, after)
	return interpreter.InterpretOutput{Status: status, Command: cmd, Document: after}
}
