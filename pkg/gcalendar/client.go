package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		// Service Account path
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// PatchDates turns the event into an all-day event spanning the given dates.
// Google treats the end date as exclusive, so one day is added.
func (c *Client) PatchDates(ctx context.Context, req PatchDatesRequest) (*Event, error) {
	if req.EventID == "" {
		return nil, fmt.Errorf("event id is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("event %s: end %s before start %s", req.EventID, formatDate(req.EndDate), formatDate(req.StartDate))
	}

	patch := &calendar.Event{
		Start: &calendar.EventDateTime{Date: formatDate(req.StartDate), NullFields: []string{"DateTime"}},
		End:   &calendar.EventDateTime{Date: formatDate(req.EndDate.AddDate(0, 0, 1)), NullFields: []string{"DateTime"}},
	}

	updated, err := c.service.Events.Patch(calendarOrDefault(req.CalendarID), req.EventID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch calendar event %s: %w", req.EventID, err)
	}
	return toEvent(updated)
}

// ListEvents returns single events between TimeMin and TimeMax ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarOrDefault(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev, err := toEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, nil
}

func calendarOrDefault(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

const dateLayout = "2006-01-02"

// toEvent converts an API event into inclusive calendar dates.
func toEvent(e *calendar.Event) (*Event, error) {
	if e.Start == nil || e.End == nil {
		return nil, fmt.Errorf("event %s has no start or end", e.Id)
	}

	ev := &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
	}

	if e.Start.Date != "" {
		start, err := time.Parse(dateLayout, e.Start.Date)
		if err != nil {
			return nil, fmt.Errorf("event %s: bad start date: %w", e.Id, err)
		}
		end, err := time.Parse(dateLayout, e.End.Date)
		if err != nil {
			return nil, fmt.Errorf("event %s: bad end date: %w", e.Id, err)
		}
		// Exclusive end; a malformed same-day end still yields one day.
		end = end.AddDate(0, 0, -1)
		if end.Before(start) {
			end = start
		}
		ev.StartDate, ev.EndDate, ev.AllDay = start, end, true
		return ev, nil
	}

	start, err := time.Parse(time.RFC3339, e.Start.DateTime)
	if err != nil {
		return nil, fmt.Errorf("event %s: bad start time: %w", e.Id, err)
	}
	end, err := time.Parse(time.RFC3339, e.End.DateTime)
	if err != nil {
		return nil, fmt.Errorf("event %s: bad end time: %w", e.Id, err)
	}
	ev.StartDate = truncate(start)
	ev.EndDate = truncate(end)
	if ev.EndDate.Before(ev.StartDate) {
		ev.EndDate = ev.StartDate
	}
	return ev, nil
}

// truncate keeps the wall-clock date of t as a UTC midnight.
func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
