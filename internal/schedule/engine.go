package schedule

import (
	"sort"
	"time"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/datemath"
)

// Apply runs cmd against doc and returns a new snapshot. doc itself is never
// modified. Missing targets are reported through the outcome, never panics.
func Apply(doc model.Document, cmd command.Command, now time.Time) Outcome {
	if cmd == nil || !command.MutatesSchedule(cmd) {
		return Outcome{Document: doc, Failure: FailureNotScheduleCommand}
	}
	if len(doc.Items) == 0 {
		return Outcome{Document: doc, Failure: FailureEmptyDocument}
	}

	next := doc.Clone()
	var skipped []string

	switch c := cmd.(type) {
	case command.MoveStart:
		if !moveStart(&next, c) {
			return stale(doc, c.TargetLine)
		}
	case command.Shift:
		if !shift(&next, c.TargetLine, c.DeltaDays) {
			return stale(doc, c.TargetLine)
		}
	case command.ShiftAll:
		for i := range next.Items {
			shiftItem(&next.Items[i], c.DeltaDays)
		}
	case command.DistributeChain:
		distributeChain(&next)
	case command.NormativeExtend:
		for i := range next.Items {
			offsetItem(&next.Items[i], 0, c.DeltaDays)
		}
	case command.ApplyNormativeProfile:
		skipped = missingLines(doc, c.Scope)
		if !c.Scope.All && len(skipped) == len(c.Scope.Lines) {
			return stale(doc, skipped...)
		}
		for i := range next.Items {
			if c.Scope.Includes(next.Items[i].ID) {
				offsetItem(&next.Items[i], c.StartOffsetDays, c.EndOffsetDays)
			}
		}
	case command.ShowStandardPlan:
		skipped = missingLines(doc, c.Scope)
		if !c.Scope.All && len(skipped) == len(c.Scope.Lines) {
			return stale(doc, skipped...)
		}
		standardPlan(&next, c)
	case command.BatchOperations:
		for _, s := range c.Shifts {
			if !shift(&next, s.TargetLine, s.DeltaDays) {
				skipped = append(skipped, s.TargetLine)
			}
		}
		if len(skipped) == len(c.Shifts) {
			return stale(doc, skipped...)
		}
	}

	next.Version = doc.Version + 1
	next.ModifiedAt = now.UTC()

	out := Outcome{Document: next, Skipped: skipped, Preview: command.IsPreview(cmd)}
	for _, p := range model.Diff(doc, next) {
		out.Changed = append(out.Changed, p.ItemID)
	}
	return out
}

func stale(doc model.Document, lines ...string) Outcome {
	return Outcome{Document: doc, Skipped: lines, Failure: FailureStaleTarget}
}

func missingLines(doc model.Document, scope command.Scope) []string {
	if scope.All {
		return nil
	}
	var missing []string
	for _, line := range scope.Lines {
		if doc.Find(line) < 0 {
			missing = append(missing, line)
		}
	}
	return missing
}

// moveStart sets the start date and keeps the inclusive duration.
func moveStart(doc *model.Document, c command.MoveStart) bool {
	idx := doc.Find(c.TargetLine)
	if idx < 0 {
		return false
	}
	it := &doc.Items[idx]
	span := it.Span()
	it.Start = datemath.Truncate(c.Date)
	it.End = datemath.AddDays(it.Start, span)
	return true
}

func shift(doc *model.Document, line string, delta int) bool {
	idx := doc.Find(line)
	if idx < 0 {
		return false
	}
	shiftItem(&doc.Items[idx], delta)
	return true
}

func shiftItem(it *model.Item, delta int) {
	it.Start = datemath.AddDays(it.Start, delta)
	it.End = datemath.AddDays(it.End, delta)
}

// offsetItem moves start and end independently; end never precedes start.
func offsetItem(it *model.Item, startDelta, endDelta int) {
	it.Start = datemath.AddDays(it.Start, startDelta)
	it.End = datemath.AddDays(it.End, endDelta)
	if it.End.Before(it.Start) {
		it.End = it.Start
	}
}

// byStart returns item indices ordered by start date, keeping document
// order for equal starts.
func byStart(doc *model.Document, include func(id string) bool) []int {
	idx := make([]int, 0, len(doc.Items))
	for i := range doc.Items {
		if include(doc.Items[i].ID) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return doc.Items[idx[a]].Start.Before(doc.Items[idx[b]].Start)
	})
	return idx
}

// distributeChain places every item the day after the previous one ends.
func distributeChain(doc *model.Document) {
	order := byStart(doc, func(string) bool { return true })
	for k := 1; k < len(order); k++ {
		prev := doc.Items[order[k-1]]
		it := &doc.Items[order[k]]
		span := it.Span()
		it.Start = datemath.AddDays(prev.End, 1)
		it.End = datemath.AddDays(it.Start, span)
	}
}

func standardPlan(doc *model.Document, c command.ShowStandardPlan) {
	order := byStart(doc, c.Scope.Includes)
	if len(order) == 0 {
		return
	}

	if c.DurationPolicy == command.PreserveStart {
		alignEnds(doc, order, c)
		return
	}

	aligned := doc.Items[order[0]].Start
	if c.Anchor.Kind == command.AnchorDate && !c.Anchor.Date.IsZero() {
		aligned = datemath.Truncate(c.Anchor.Date)
	}

	for k, i := range order {
		it := &doc.Items[i]
		if k > 0 {
			aligned = datemath.AddDays(doc.Items[order[k-1]].End, 1+c.GapDays)
		}
		start := aligned
		if c.Adjust == command.AdjustForwardOnly && it.Start.After(start) {
			start = it.Start
		}
		span := it.Span()
		it.Start = start
		it.End = datemath.AddDays(start, span)
	}
}

// alignEnds keeps every start and stretches or shrinks each end so that
// the next item begins gap days later. The last item keeps its end.
func alignEnds(doc *model.Document, order []int, c command.ShowStandardPlan) {
	for k := 0; k < len(order)-1; k++ {
		it := &doc.Items[order[k]]
		next := doc.Items[order[k+1]]
		end := datemath.AddDays(next.Start, -1-c.GapDays)
		if c.Adjust == command.AdjustForwardOnly && it.End.After(end) {
			end = it.End
		}
		if end.Before(it.Start) {
			end = it.Start
		}
		it.End = end
	}
}
