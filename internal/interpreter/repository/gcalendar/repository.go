package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/gcalendar"
)

// PushPatches writes every patch to its event. It keeps going after a
// failure and returns all failures joined.
func (r *Repository) PushPatches(ctx context.Context, patches []model.Patch) error {
	var errs []error
	for _, p := range patches {
		_, err := r.client.PatchDates(ctx, gcalendar.PatchDatesRequest{
			CalendarID: r.calendarID,
			EventID:    p.ItemID,
			StartDate:  p.Start,
			EndDate:    p.End,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("item %s: %w", p.ItemID, err))
			continue
		}
		r.l.Debugf(ctx, "internal.interpreter.repository.gcalendar.PushPatches: %s -> %s..%s",
			p.ItemID, p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly))
	}
	return errors.Join(errs...)
}

// LoadItems reads the events between from and to as schedule items.
func (r *Repository) LoadItems(ctx context.Context, from, to time.Time) ([]model.Item, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(events))
	for _, ev := range events {
		items = append(items, model.Item{
			ID:          ev.ID,
			Label:       ev.Summary,
			Start:       ev.StartDate,
			End:         ev.EndDate,
			Description: ev.Description,
		})
	}
	return items, nil
}
