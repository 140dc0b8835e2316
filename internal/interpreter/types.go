package interpreter

import (
	"time"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/pending"
	"schedule-interpreter/internal/schedule"
)

// Status describes what Interpret did with an utterance.
type Status string

const (
	StatusProposed       Status = "proposed"
	StatusPreviewed      Status = "previewed"
	StatusApplied        Status = "applied"
	StatusCancelled      Status = "cancelled"
	StatusUndone         Status = "undone"
	StatusRedone         Status = "redone"
	StatusPassthrough    Status = "passthrough"
	StatusNothingPending Status = "nothing_pending"
	StatusNoMatch        Status = "no_match"
	StatusFailed         Status = "failed"
)

// LoadDocumentInput is the input for LoadDocument.
type LoadDocumentInput struct {
	Items []model.Item
}

// DocumentOutput is the current schedule of a session.
type DocumentOutput struct {
	Document model.Document
	// Aliases maps item id to its assigned alias.
	Aliases map[string]string
	CanUndo bool
	CanRedo bool
}

// InterpretInput is the input for Interpret.
type InterpretInput struct {
	Text string
	// Now overrides the clock for relative dates; zero means the service clock.
	Now time.Time
}

// InterpretOutput is the result of one utterance.
type InterpretOutput struct {
	Status  Status
	Command command.Command
	// Action is set when a command was queued or a queued action was resolved.
	Action *pending.Action
	// Document is the preview for proposed or previewed commands, otherwise the current document.
	Document model.Document
	Preview  bool
	Changed  []string
	Skipped  []string
	Failure  schedule.Failure
	// Fallback tells the caller the utterance should go to an external fallback.
	Fallback bool
	// Reason carries the parser's rejection detail on no match.
	Reason string
}

// ActionInput identifies a pending action.
type ActionInput struct {
	ActionID string
}

// PendingOutput lists pending actions newest first.
type PendingOutput struct {
	Actions []pending.Action
}

// ApplyOutput is the result of confirming an action.
type ApplyOutput struct {
	Action   pending.Action
	Document model.Document
	Changed  []string
	Skipped  []string
	Failure  schedule.Failure
}

// StatsOutput describes the live session cache.
type StatsOutput struct {
	Sessions        int
	SessionCapacity int
	SessionTTL      time.Duration
	Seeded          bool
	SinkConfigured  bool
}
