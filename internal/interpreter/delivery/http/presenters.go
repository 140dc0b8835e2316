package http

import (
	"errors"
	"strings"
	"time"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/pending"
	"schedule-interpreter/pkg/response"
)

// --- Request DTOs ---

type itemReq struct {
	ID          string        `json:"id"          binding:"required"`
	Label       string        `json:"label"`
	Start       response.Date `json:"start"`
	End         response.Date `json:"end"`
	Assignee    string        `json:"assignee"`
	Description string        `json:"description"`
}

type loadDocumentReq struct {
	Items []itemReq `json:"items" binding:"dive"`
}

func (r loadDocumentReq) validate() error {
	for _, it := range r.Items {
		if time.Time(it.Start).IsZero() || time.Time(it.End).IsZero() {
			return errors.New("every item needs start and end dates")
		}
	}
	return nil
}

func (r loadDocumentReq) toInput() interpreter.LoadDocumentInput {
	items := make([]model.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = model.Item{
			ID:          it.ID,
			Label:       it.Label,
			Start:       time.Time(it.Start),
			End:         time.Time(it.End),
			Assignee:    it.Assignee,
			Description: it.Description,
		}
	}
	return interpreter.LoadDocumentInput{Items: items}
}

// ---

type interpretReq struct {
	Text string `json:"text" binding:"required,max=1000"`
	// Now optionally pins "today" for relative dates, RFC 3339.
	Now *time.Time `json:"now"`
}

func (r interpretReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}
	return nil
}

func (r interpretReq) toInput() interpreter.InterpretInput {
	in := interpreter.InterpretInput{Text: r.Text}
	if r.Now != nil {
		in.Now = *r.Now
	}
	return in
}

// ---

type actionReq struct {
	ActionID string
}

func (r actionReq) validate() error {
	if r.ActionID == "" {
		return errMissingAction
	}
	return nil
}

func (r actionReq) toInput() interpreter.ActionInput {
	return interpreter.ActionInput{ActionID: r.ActionID}
}

// --- Response DTOs ---

type itemResp struct {
	ID           string        `json:"id"`
	Alias        string        `json:"alias,omitempty"`
	Label        string        `json:"label"`
	Start        response.Date `json:"start"`
	End          response.Date `json:"end"`
	DurationDays int           `json:"duration_days"`
	Assignee     string        `json:"assignee,omitempty"`
	Description  string        `json:"description,omitempty"`
}

func newItemResp(it model.Item, aliases map[string]string) itemResp {
	return itemResp{
		ID:           it.ID,
		Alias:        aliases[it.ID],
		Label:        it.Label,
		Start:        response.Date(it.Start),
		End:          response.Date(it.End),
		DurationDays: it.Duration(),
		Assignee:     it.Assignee,
		Description:  it.Description,
	}
}

type documentResp struct {
	Items      []itemResp `json:"items"`
	Version    int        `json:"version"`
	ModifiedAt time.Time  `json:"modified_at"`
}

func newDocumentResp(doc model.Document, aliases map[string]string) documentResp {
	items := make([]itemResp, len(doc.Items))
	for i, it := range doc.Items {
		items[i] = newItemResp(it, aliases)
	}
	return documentResp{
		Items:      items,
		Version:    doc.Version,
		ModifiedAt: doc.ModifiedAt,
	}
}

type sessionDocumentResp struct {
	Document documentResp `json:"document"`
	CanUndo  bool         `json:"can_undo"`
	CanRedo  bool         `json:"can_redo"`
}

func (h *handler) newSessionDocumentResp(out interpreter.DocumentOutput) sessionDocumentResp {
	return sessionDocumentResp{
		Document: newDocumentResp(out.Document, out.Aliases),
		CanUndo:  out.CanUndo,
		CanRedo:  out.CanRedo,
	}
}

// ---

type commandResp struct {
	Kind   string         `json:"kind"`
	Params map[string]any `json:"params,omitempty"`
}

func newCommandResp(cmd command.Command) *commandResp {
	if cmd == nil {
		return nil
	}
	return &commandResp{Kind: string(cmd.Kind()), Params: commandParams(cmd)}
}

func scopeParams(s command.Scope) map[string]any {
	if s.All {
		return map[string]any{"all": true}
	}
	return map[string]any{"aliases": s.Aliases, "lines": s.Lines}
}

func shiftParams(s command.Shift) map[string]any {
	return map[string]any{"alias": s.Alias, "target_line": s.TargetLine, "delta_days": s.DeltaDays}
}

func commandParams(cmd command.Command) map[string]any {
	switch c := cmd.(type) {
	case command.MoveStart:
		return map[string]any{"alias": c.Alias, "target_line": c.TargetLine, "date": response.Date(c.Date)}
	case command.Shift:
		return shiftParams(c)
	case command.ShiftAll:
		return map[string]any{"delta_days": c.DeltaDays}
	case command.NormativeExtend:
		return map[string]any{"delta_days": c.DeltaDays}
	case command.ApplyNormativeProfile:
		return map[string]any{
			"profile_id":        c.ProfileID,
			"start_offset_days": c.StartOffsetDays,
			"end_offset_days":   c.EndOffsetDays,
			"scope":             scopeParams(c.Scope),
			"mode":              c.Mode,
		}
	case command.ShowStandardPlan:
		anchor := map[string]any{"kind": c.Anchor.Kind}
		if c.Anchor.Kind == command.AnchorDate {
			anchor["date"] = response.Date(c.Anchor.Date)
		}
		return map[string]any{
			"scope":           scopeParams(c.Scope),
			"gap_days":        c.GapDays,
			"anchor":          anchor,
			"adjust":          c.Adjust,
			"duration_policy": c.DurationPolicy,
			"mode":            c.Mode,
		}
	case command.BatchOperations:
		shifts := make([]map[string]any, len(c.Shifts))
		for i, s := range c.Shifts {
			shifts[i] = shiftParams(s)
		}
		return map[string]any{"shifts": shifts}
	case command.OpenDocument:
		params := map[string]any{"name": c.Name}
		if c.Page > 0 {
			params["page"] = c.Page
		}
		return params
	case command.AnalyzeDocument:
		return map[string]any{"target": c.Target}
	case command.AddTaskAppend:
		return map[string]any{"text": c.Text}
	}
	return nil
}

// ---

type actionResp struct {
	ID         string         `json:"id"`
	Command    *commandResp   `json:"command"`
	Summary    string         `json:"summary"`
	CreatedAt  time.Time      `json:"created_at"`
	TargetDate *response.Date `json:"target_date,omitempty"`
}

func newActionResp(a pending.Action) actionResp {
	resp := actionResp{
		ID:        a.ID,
		Command:   newCommandResp(a.Command),
		Summary:   a.Summary,
		CreatedAt: a.CreatedAt,
	}
	if a.TargetDate != nil {
		d := response.Date(*a.TargetDate)
		resp.TargetDate = &d
	}
	return resp
}

type pendingResp struct {
	Actions []actionResp `json:"actions"`
}

func (h *handler) newPendingResp(out interpreter.PendingOutput) pendingResp {
	actions := make([]actionResp, len(out.Actions))
	for i, a := range out.Actions {
		actions[i] = newActionResp(a)
	}
	return pendingResp{Actions: actions}
}

// ---

type interpretResp struct {
	Status   string       `json:"status"`
	Command  *commandResp `json:"command,omitempty"`
	Action   *actionResp  `json:"action,omitempty"`
	Document documentResp `json:"document"`
	Preview  bool         `json:"preview"`
	Changed  []string     `json:"changed,omitempty"`
	Skipped  []string     `json:"skipped,omitempty"`
	Failure  string       `json:"failure,omitempty"`
	Fallback bool         `json:"fallback"`
	Reason   string       `json:"reason,omitempty"`
}

func (h *handler) newInterpretResp(out interpreter.InterpretOutput) interpretResp {
	resp := interpretResp{
		Status:   string(out.Status),
		Command:  newCommandResp(out.Command),
		Document: newDocumentResp(out.Document, nil),
		Preview:  out.Preview,
		Changed:  out.Changed,
		Skipped:  out.Skipped,
		Failure:  string(out.Failure),
		Fallback: out.Fallback,
		Reason:   out.Reason,
	}
	if out.Action != nil {
		a := newActionResp(*out.Action)
		resp.Action = &a
	}
	return resp
}

type applyResp struct {
	Action   actionResp   `json:"action"`
	Document documentResp `json:"document"`
	Changed  []string     `json:"changed,omitempty"`
	Skipped  []string     `json:"skipped,omitempty"`
	Failure  string       `json:"failure,omitempty"`
}

func (h *handler) newApplyResp(out interpreter.ApplyOutput) applyResp {
	return applyResp{
		Action:   newActionResp(out.Action),
		Document: newDocumentResp(out.Document, nil),
		Changed:  out.Changed,
		Skipped:  out.Skipped,
		Failure:  string(out.Failure),
	}
}
