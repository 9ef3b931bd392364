package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/dayplan/internal/agenda"
	"github.com/teemow/dayplan/internal/google"
)

// Color IDs and default reminders for self-scheduled blocks
const (
	focusColorID   = "9" // blueberry
	commuteColorID = "8" // graphite

	focusReminderMinutes   = 5
	commuteReminderMinutes = 10
)

// Client wraps the Google Calendar service
type Client struct {
	svc           *calendar.Service
	account       string // The account this client is associated with
	tokenProvider google.TokenProvider
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// GetAuthURLForAccount returns the OAuth URL for user authorization for a specific account
func GetAuthURLForAccount(account string) string {
	return google.GetAuthURLForAccount(account)
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2 authentication for a specific account
// The OAuth token is retrieved from the provided token provider
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	// Get token from the provided provider
	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	// Create OAuth2 config and token source
	conf := google.GetOAuthConfig()
	tokenSource := conf.TokenSource(ctx, token)

	// Create HTTP client with the token
	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication for a specific account
// Uses the default file-based token provider
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// ListDayEvents lists the events of a single day, from midnight to
// midnight in loc, converted into the agenda model. Cancelled events
// and events with malformed times are skipped; events the user has
// declined are skipped too unless includeDeclined is set.
func (c *Client) ListDayEvents(calendarID string, day time.Time, loc *time.Location, includeDeclined bool) ([]agenda.Event, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	result, err := c.svc.Events.List(calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var events []agenda.Event
	for _, item := range result.Items {
		if item.Status == "cancelled" {
			continue
		}
		e, err := toAgendaEvent(item, loc)
		if err != nil {
			slog.Warn("skipping malformed event", "account", c.account, "error", err)
			continue
		}
		if !includeDeclined && e.Status == agenda.StatusDeclined {
			continue
		}
		events = append(events, e)
	}

	return events, nil
}

// CreateEvent creates a new calendar event
func (c *Client) CreateEvent(calendarID string, input EventInput) (*calendar.Event, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		ColorId:     input.ColorID,
	}

	// Set start and end times
	// For all-day events, use Date instead of DateTime
	if input.AllDay {
		event.Start = &calendar.EventDateTime{
			Date: input.Start.Format("2006-01-02"),
		}
		event.End = &calendar.EventDateTime{
			Date: input.End.Format("2006-01-02"),
		}
	} else {
		if input.TimeZone == "" {
			input.TimeZone = "UTC"
		}
		event.Start = &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		}
	}

	// Set attendees
	if len(input.Attendees) > 0 {
		var attendees []*calendar.EventAttendee
		for _, email := range input.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{
				Email: email,
			})
		}
		event.Attendees = attendees
	}

	// Override the calendar's default reminders with a single popup
	if input.ReminderMinutes > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: input.ReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	// Add conference data (Google Meet)
	call := c.svc.Events.Insert(calendarID, event)
	if input.UseDefaultConferenceData {
		call = call.ConferenceDataVersion(1)
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: fmt.Sprintf("meet-%d", time.Now().Unix()),
			},
		}
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

// CreateFocusBlock creates a deep-work block with the reserved focus
// title, blueberry color, and a short popup reminder.
func (c *Client) CreateFocusBlock(calendarID, label, description string, start, end time.Time, timeZone string) (*calendar.Event, error) {
	return c.CreateEvent(calendarID, EventInput{
		Summary:         agenda.FocusBlockTitle(label),
		Description:     description,
		Start:           start,
		End:             end,
		TimeZone:        timeZone,
		ColorID:         focusColorID,
		ReminderMinutes: focusReminderMinutes,
	})
}

// CreateCommuteBlock creates a travel buffer with the reserved commute
// title, graphite color, and a reminder long enough to leave on time.
func (c *Client) CreateCommuteBlock(calendarID, description string, start, end time.Time, timeZone string) (*calendar.Event, error) {
	return c.CreateEvent(calendarID, EventInput{
		Summary:         agenda.CommuteTitle(),
		Description:     description,
		Start:           start,
		End:             end,
		TimeZone:        timeZone,
		ColorID:         commuteColorID,
		ReminderMinutes: commuteReminderMinutes,
	})
}

// RespondToEvent records the user's attendance response on an event by
// patching their own attendee entry. sendUpdates controls whether the
// organizer and guests are notified ("all", "externalOnly", "none").
func (c *Client) RespondToEvent(calendarID, eventID string, status agenda.Status, sendUpdates string) error {
	event, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}

	found := false
	for _, att := range event.Attendees {
		if att.Self {
			att.ResponseStatus = string(status)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("you are not an attendee of event %q", event.Summary)
	}

	patch := &calendar.Event{Attendees: event.Attendees}
	call := c.svc.Events.Patch(calendarID, eventID, patch)
	if sendUpdates != "" {
		call = call.SendUpdates(sendUpdates)
	}
	if _, err := call.Do(); err != nil {
		return fmt.Errorf("failed to update response: %w", err)
	}

	return nil
}

// DeclineEvent declines the event on behalf of the user.
func (c *Client) DeclineEvent(calendarID, eventID string, notify bool) error {
	sendUpdates := "none"
	if notify {
		sendUpdates = "all"
	}
	return c.RespondToEvent(calendarID, eventID, agenda.StatusDeclined, sendUpdates)
}

// RescheduleEvent moves an event to a new time span and prepends a note
// to its description so attendees can see why it moved.
func (c *Client) RescheduleEvent(calendarID, eventID string, newStart, newEnd time.Time, timeZone, message string, notify bool) (*calendar.Event, error) {
	existing, err := c.svc.Events.Get(calendarID, eventID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if timeZone == "" {
		timeZone = "UTC"
	}
	existing.Start = &calendar.EventDateTime{
		DateTime: newStart.Format(time.RFC3339),
		TimeZone: timeZone,
	}
	existing.End = &calendar.EventDateTime{
		DateTime: newEnd.Format(time.RFC3339),
		TimeZone: timeZone,
	}

	if message != "" {
		note := "Rescheduled: " + message
		if existing.Description != "" {
			existing.Description = note + "\n\n" + existing.Description
		} else {
			existing.Description = note
		}
	}

	sendUpdates := "none"
	if notify {
		sendUpdates = "all"
	}
	updated, err := c.svc.Events.Update(calendarID, eventID, existing).SendUpdates(sendUpdates).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return updated, nil
}

// FindEventByTitle looks up an event on the given day whose title
// contains the query, case-insensitively. It fails when no event or
// more than one event matches, so callers never act on the wrong
// meeting.
func (c *Client) FindEventByTitle(calendarID string, day time.Time, loc *time.Location, query string) (agenda.Event, error) {
	events, err := c.ListDayEvents(calendarID, day, loc, false)
	if err != nil {
		return agenda.Event{}, err
	}

	needle := strings.ToLower(query)
	var matches []agenda.Event
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return agenda.Event{}, fmt.Errorf("no event matching %q found", query)
	case 1:
		return matches[0], nil
	default:
		titles := make([]string, len(matches))
		for i, m := range matches {
			titles[i] = m.Title
		}
		return agenda.Event{}, fmt.Errorf("multiple events match %q: %s", query, strings.Join(titles, ", "))
	}
}
