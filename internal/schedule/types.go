package schedule

import "schedule-interpreter/internal/model"

// Failure explains why Apply did not produce a new document.
type Failure string

const (
	FailureNone               Failure = ""
	FailureStaleTarget        Failure = "stale_target"
	FailureNotScheduleCommand Failure = "not_schedule_command"
	FailureEmptyDocument      Failure = "empty_document"
)

// Outcome is the result of applying one command.
type Outcome struct {
	// Document is the new snapshot, or the input document on failure.
	Document model.Document
	// Changed lists item ids whose dates differ from the input.
	Changed []string
	// Skipped lists targeted item ids that no longer exist.
	Skipped []string
	// Preview marks a result that must be shown but never committed.
	Preview bool
	Failure Failure
}

// OK reports whether the command produced a document.
func (o Outcome) OK() bool {
	return o.Failure == FailureNone
}
