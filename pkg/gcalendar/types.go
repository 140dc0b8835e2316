package gcalendar

import "time"

// DefaultCalendarID is used when a request leaves the calendar empty.
const DefaultCalendarID = "primary"

// Event is a simplified Google Calendar event. StartDate and EndDate are
// inclusive calendar dates at UTC midnight.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartDate   time.Time
	EndDate     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// PatchDatesRequest moves an event to whole days. EndDate is inclusive.
type PatchDatesRequest struct {
	CalendarID string
	EventID    string
	StartDate  time.Time
	EndDate    time.Time
}
