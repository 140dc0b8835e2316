package gcalendar

import (
	"context"

	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/pkg/gcalendar"
	"schedule-interpreter/pkg/log"
)

// Client is the subset of the Google Calendar client the repository needs.
type Client interface {
	PatchDates(ctx context.Context, req gcalendar.PatchDatesRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Repository stores schedule items as calendar events keyed by item id.
type Repository struct {
	l          log.Logger
	client     Client
	calendarID string
}

var _ interpreter.PatchSink = (*Repository)(nil)

// New creates a calendar-backed schedule repository.
func New(l log.Logger, client Client, calendarID string) *Repository {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &Repository{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}
