package usecase

import (
	"context"
	"fmt"

	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/datemath"
)

// LoadDocument replaces the session's schedule.
func (uc *implUseCase) LoadDocument(ctx context.Context, sc model.Scope, input interpreter.LoadDocumentInput) (interpreter.DocumentOutput, error) {
	items, err := validateItems(input.Items)
	if err != nil {
		uc.l.Warnf(ctx, "%s: session=%s rejected document: %v", LogPrefixLoadDocument, sc.SessionID, err)
		return interpreter.DocumentOutput{}, err
	}

	s := uc.getOrCreate(sc.SessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset(model.Document{Items: items, ModifiedAt: uc.cfg.Clock().UTC(), Version: 1})

	uc.l.Infof(ctx, "%s: session=%s loaded %d items", LogPrefixLoadDocument, sc.SessionID, len(items))
	return s.documentOutput(), nil
}

// GetDocument returns the current schedule snapshot.
func (uc *implUseCase) GetDocument(ctx context.Context, sc model.Scope) (interpreter.DocumentOutput, error) {
	s, err := uc.lookup(sc.SessionID)
	if err != nil {
		return interpreter.DocumentOutput{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.documentOutput(), nil
}

// validateItems normalizes dates to calendar days and checks ids and ranges.
func validateItems(in []model.Item) ([]model.Item, error) {
	seen := make(map[string]bool, len(in))
	out := make([]model.Item, 0, len(in))
	for i, it := range in {
		if it.ID == "" {
			return nil, fmt.Errorf("%w: item %d has no id", interpreter.ErrInvalidItem, i)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", interpreter.ErrInvalidItem, it.ID)
		}
		seen[it.ID] = true

		it.Start = datemath.Truncate(it.Start)
		it.End = datemath.Truncate(it.End)
		if it.Start.IsZero() || it.End.IsZero() {
			return nil, fmt.Errorf("%w: item %q has no dates", interpreter.ErrInvalidItem, it.ID)
		}
		if it.End.Before(it.Start) {
			return nil, fmt.Errorf("%w: item %q ends before it starts", interpreter.ErrInvalidItem, it.ID)
		}
		out = append(out, it)
	}
	return out, nil
}
