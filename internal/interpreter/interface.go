package interpreter

import (
	"context"

	"schedule-interpreter/internal/model"
)

// UseCase drives one schedule interpreter session per scope.
type UseCase interface {
	// LoadDocument replaces the session's schedule, assigns aliases and resets history and pending actions.
	LoadDocument(ctx context.Context, sc model.Scope, input LoadDocumentInput) (DocumentOutput, error)

	// GetDocument returns the current schedule snapshot with aliases.
	GetDocument(ctx context.Context, sc model.Scope) (DocumentOutput, error)

	// Interpret parses an utterance and proposes, previews or runs the resulting command.
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (InterpretOutput, error)

	// ListPending returns proposed actions, newest first.
	ListPending(ctx context.Context, sc model.Scope) (PendingOutput, error)

	// Confirm applies a pending action and commits the result.
	Confirm(ctx context.Context, sc model.Scope, input ActionInput) (ApplyOutput, error)

	// Cancel drops a pending action without applying it.
	Cancel(ctx context.Context, sc model.Scope, input ActionInput) (PendingOutput, error)

	Undo(ctx context.Context, sc model.Scope) (DocumentOutput, error)
	Redo(ctx context.Context, sc model.Scope) (DocumentOutput, error)

	// Stats reports session cache usage and which optional collaborators are wired.
	Stats(ctx context.Context) StatsOutput
}

// PatchSink receives date changes after they are committed. Failures are
// reported but never roll back the in-memory document.
type PatchSink interface {
	PushPatches(ctx context.Context, patches []model.Patch) error
}
