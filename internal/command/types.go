package command

import "time"

// Kind tags each Command variant.
type Kind string

const (
	KindMoveStart             Kind = "move_start"
	KindShift                 Kind = "shift"
	KindShiftAll              Kind = "shift_all"
	KindDistributeChain       Kind = "distribute_chain"
	KindNormativeExtend       Kind = "normative_extend"
	KindApplyNormativeProfile Kind = "apply_normative_profile"
	KindShowStandardPlan      Kind = "show_standard_plan"
	KindBatchOperations       Kind = "batch_operations"
	KindOpenDocument          Kind = "open_document"
	KindAnalyzeDocument       Kind = "analyze_document"
	KindAddTaskOpen           Kind = "add_task_open"
	KindAddTaskAppend         Kind = "add_task_append"
	KindModalSave             Kind = "modal_save"
	KindModalCancel           Kind = "modal_cancel"
	KindTtsRead               Kind = "tts_read"
	KindExitFocus             Kind = "exit_focus"
	KindCancelPending         Kind = "cancel_pending"
	KindConfirmPending        Kind = "confirm_pending"
	KindUndo                  Kind = "undo"
	KindRedo                  Kind = "redo"
)

// Command is the closed set of interpreter results. Variants carry only
// primitive fields.
type Command interface {
	Kind() Kind
}

// Mode selects whether a profile or plan is only previewed or committed.
type Mode string

const (
	ModePreview Mode = "preview"
	ModeCommit  Mode = "commit"
)

// Scope selects the items a bulk command applies to. All wins over Lines.
type Scope struct {
	All     bool
	Aliases []string
	Lines   []string
}

// ScopeAll targets every item.
func ScopeAll() Scope { return Scope{All: true} }

// Includes reports whether the item id is targeted.
func (s Scope) Includes(id string) bool {
	if s.All {
		return true
	}
	for _, l := range s.Lines {
		if l == id {
			return true
		}
	}
	return false
}

// AnchorKind selects where a standard plan starts.
type AnchorKind string

const (
	AnchorFirstItem AnchorKind = "first_item"
	AnchorDate      AnchorKind = "date"
)

// Anchor is the start point of a standard plan.
type Anchor struct {
	Kind AnchorKind
	Date time.Time
}

// Adjust controls whether plan alignment may move items earlier.
type Adjust string

const (
	AdjustBoth        Adjust = "both"
	AdjustForwardOnly Adjust = "forward_only"
)

// DurationPolicy chooses what a standard plan keeps fixed.
type DurationPolicy string

const (
	PreserveDuration DurationPolicy = "preserve_duration"
	PreserveStart    DurationPolicy = "preserve_start"
)

type (
	// MoveStart sets an item's start date; its duration is preserved.
	MoveStart struct {
		Alias      string
		TargetLine string
		Date       time.Time
	}

	// Shift moves one item by a signed number of days.
	Shift struct {
		Alias      string
		TargetLine string
		DeltaDays  int
	}

	// ShiftAll moves every item by a signed number of days.
	ShiftAll struct {
		DeltaDays int
	}

	// DistributeChain re-sequences items back to back by current start.
	DistributeChain struct{}

	// NormativeExtend extends every item's end date.
	NormativeExtend struct {
		DeltaDays int
	}

	// ApplyNormativeProfile applies start/end offsets to a scope.
	ApplyNormativeProfile struct {
		ProfileID       string
		StartOffsetDays int
		EndOffsetDays   int
		Scope           Scope
		Mode            Mode
	}

	// ShowStandardPlan aligns items one after another with a gap.
	ShowStandardPlan struct {
		Scope          Scope
		GapDays        int
		Anchor         Anchor
		Adjust         Adjust
		DurationPolicy DurationPolicy
		Mode           Mode
	}

	// BatchOperations carries several shifts spoken in one utterance.
	BatchOperations struct {
		Shifts []Shift
	}

	OpenDocument struct {
		Name string
		Page int
	}

	AnalyzeDocument struct {
		Target string
	}

	AddTaskOpen struct{}

	AddTaskAppend struct {
		Text string
	}

	ModalSave      struct{}
	ModalCancel    struct{}
	TtsRead        struct{}
	ExitFocus      struct{}
	CancelPending  struct{}
	ConfirmPending struct{}
	Undo           struct{}
	Redo           struct{}
)

func (MoveStart) Kind() Kind             { return KindMoveStart }
func (Shift) Kind() Kind                 { return KindShift }
func (ShiftAll) Kind() Kind              { return KindShiftAll }
func (DistributeChain) Kind() Kind       { return KindDistributeChain }
func (NormativeExtend) Kind() Kind       { return KindNormativeExtend }
func (ApplyNormativeProfile) Kind() Kind { return KindApplyNormativeProfile }
func (ShowStandardPlan) Kind() Kind      { return KindShowStandardPlan }
func (BatchOperations) Kind() Kind       { return KindBatchOperations }
func (OpenDocument) Kind() Kind          { return KindOpenDocument }
func (AnalyzeDocument) Kind() Kind       { return KindAnalyzeDocument }
func (AddTaskOpen) Kind() Kind           { return KindAddTaskOpen }
func (AddTaskAppend) Kind() Kind         { return KindAddTaskAppend }
func (ModalSave) Kind() Kind             { return KindModalSave }
func (ModalCancel) Kind() Kind           { return KindModalCancel }
func (TtsRead) Kind() Kind               { return KindTtsRead }
func (ExitFocus) Kind() Kind             { return KindExitFocus }
func (CancelPending) Kind() Kind         { return KindCancelPending }
func (ConfirmPending) Kind() Kind        { return KindConfirmPending }
func (Undo) Kind() Kind                  { return KindUndo }
func (Redo) Kind() Kind                  { return KindRedo }
