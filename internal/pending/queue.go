package pending

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/datemath"
)

// DefaultCapacity is the number of proposals kept before the oldest is dropped.
const DefaultCapacity = 5

// Action is a proposed command awaiting confirmation.
type Action struct {
	ID        string
	Command   command.Command
	CreatedAt time.Time
	// TargetDate is resolved at proposal time for date-bearing commands so
	// previews never recompute it.
	TargetDate *time.Time
	Summary    string
}

// Applier receives the command of a confirmed action.
type Applier func(cmd command.Command)

// Option configures a Queue.
type Option func(*Queue)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// Queue is a bounded newest-first list of proposals. It is not safe for
// concurrent use.
type Queue struct {
	capacity int
	items    []Action
	now      func() time.Time
}

// New creates a queue. A non-positive capacity falls back to DefaultCapacity.
func New(capacity int, opts ...Option) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	q := &Queue{capacity: capacity, now: time.Now}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Propose wraps cmd into a new action at the front of the queue, silently
// evicting the oldest action past capacity.
func (q *Queue) Propose(cmd command.Command, doc model.Document) Action {
	a := Action{
		ID:         uuid.NewString(),
		Command:    cmd,
		CreatedAt:  q.now().UTC(),
		TargetDate: targetDate(cmd, doc),
		Summary:    Summarize(cmd),
	}

	q.items = append([]Action{a}, q.items...)
	if len(q.items) > q.capacity {
		q.items = q.items[:q.capacity]
	}
	return a
}

// Confirm hands the action's command to apply and then removes it. An
// unknown id is a no-op and apply is not called.
func (q *Queue) Confirm(id string, apply Applier) (Action, bool) {
	idx := q.index(id)
	if idx < 0 {
		return Action{}, false
	}
	a := q.items[idx]
	if apply != nil {
		apply(a.Command)
	}
	q.remove(idx)
	return a, true
}

// Cancel removes the action without applying it.
func (q *Queue) Cancel(id string) bool {
	idx := q.index(id)
	if idx < 0 {
		return false
	}
	q.remove(idx)
	return true
}

// PeekNewest returns the most recently proposed action.
func (q *Queue) PeekNewest() (Action, bool) {
	if len(q.items) == 0 {
		return Action{}, false
	}
	return q.items[0], true
}

// Get returns the action with the given id.
func (q *Queue) Get(id string) (Action, bool) {
	idx := q.index(id)
	if idx < 0 {
		return Action{}, false
	}
	return q.items[idx], true
}

// List returns a copy of the queue, newest first.
func (q *Queue) List() []Action {
	out := make([]Action, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Clear drops every pending action.
func (q *Queue) Clear() {
	q.items = nil
}

func (q *Queue) index(id string) int {
	for i := range q.items {
		if q.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (q *Queue) remove(idx int) {
	q.items = append(q.items[:idx:idx], q.items[idx+1:]...)
}

func targetDate(cmd command.Command, doc model.Document) *time.Time {
	var t time.Time
	switch c := cmd.(type) {
	case command.MoveStart:
		t = c.Date
	case command.Shift:
		it, ok := doc.Item(c.TargetLine)
		if !ok {
			return nil
		}
		t = datemath.AddDays(it.Start, c.DeltaDays)
	case command.ShiftAll:
		if len(doc.Items) == 0 {
			return nil
		}
		earliest := doc.Items[0].Start
		for _, it := range doc.Items[1:] {
			if it.Start.Before(earliest) {
				earliest = it.Start
			}
		}
		t = datemath.AddDays(earliest, c.DeltaDays)
	default:
		return nil
	}
	return &t
}

// Summarize renders a short human-readable description of a command.
func Summarize(cmd command.Command) string {
	switch c := cmd.(type) {
	case command.MoveStart:
		return fmt.Sprintf("%s: pocetak na %s", c.Alias, datemath.FormatISO(c.Date))
	case command.Shift:
		return fmt.Sprintf("%s: pomak %+d dana", c.Alias, c.DeltaDays)
	case command.ShiftAll:
		return fmt.Sprintf("sve pozicije: pomak %+d dana", c.DeltaDays)
	case command.DistributeChain:
		return "lancani raspored svih pozicija"
	case command.NormativeExtend:
		return fmt.Sprintf("normativ: kraj %+d dana", c.DeltaDays)
	case command.ApplyNormativeProfile:
		return fmt.Sprintf("normativ %s: pocetak %+d, kraj %+d dana", c.ProfileID, c.StartOffsetDays, c.EndOffsetDays)
	case command.ShowStandardPlan:
		return fmt.Sprintf("standardni plan: razmak %d dana", c.GapDays)
	case command.BatchOperations:
		return fmt.Sprintf("%d pomaka pozicija", len(c.Shifts))
	}
	return string(cmd.Kind())
}
