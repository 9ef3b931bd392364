package calendar

import (
	"fmt"
	"strings"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/dayplan/internal/agenda"
)

// EventInput represents the input for creating a calendar event
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string

	// AllDay events use a date instead of a timestamp
	AllDay bool

	// ColorID is a Google Calendar color identifier ("1".."11")
	ColorID string

	// ReminderMinutes adds a popup reminder this many minutes before the
	// event. Zero keeps the calendar's default reminders.
	ReminderMinutes int64

	// Conference data
	UseDefaultConferenceData bool // Automatically add Google Meet
}

// videoLinkHosts are matched against the description to detect meetings
// whose video link is pasted as text rather than attached as
// conference data.
var videoLinkHosts = []string{
	"meet.google.com",
	"zoom.us",
	"teams.microsoft.com",
}

// toAgendaEvent converts a raw Google Calendar event into the
// normalized agenda model. Times are interpreted in loc; all-day dates
// span midnight to midnight in loc. An event with unparseable times or
// an inverted interval is reported as an error so callers can skip it.
func toAgendaEvent(event *calendar.Event, loc *time.Location) (agenda.Event, error) {
	if event == nil {
		return agenda.Event{}, fmt.Errorf("nil event")
	}

	start, err := parseEventTime(event.Start, loc)
	if err != nil {
		return agenda.Event{}, fmt.Errorf("event %q: start: %w", event.Summary, err)
	}
	end, err := parseEventTime(event.End, loc)
	if err != nil {
		return agenda.Event{}, fmt.Errorf("event %q: end: %w", event.Summary, err)
	}

	e, err := agenda.NewEvent(event.Id, event.Summary, start.In(loc), end.In(loc), selfStatus(event))
	if err != nil {
		return agenda.Event{}, err
	}

	e.Location = event.Location
	e.Description = event.Description
	for _, att := range event.Attendees {
		if att.Email != "" {
			e.Attendees = append(e.Attendees, att.Email)
		}
	}
	e.MeetingLink = hasMeetingLink(event)

	return e, nil
}

// parseEventTime parses either side of an event's time span. All-day
// events carry a date only, which is read as midnight in loc.
func parseEventTime(edt *calendar.EventDateTime, loc *time.Location) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing time")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	if edt.Date != "" {
		return time.ParseInLocation("2006-01-02", edt.Date, loc)
	}
	return time.Time{}, fmt.Errorf("missing time")
}

// selfStatus extracts the viewing user's own response to the event. For
// events without attendees (self-created blocks) the response defaults
// to accepted.
func selfStatus(event *calendar.Event) agenda.Status {
	for _, att := range event.Attendees {
		if att.Self {
			switch att.ResponseStatus {
			case "accepted":
				return agenda.StatusAccepted
			case "declined":
				return agenda.StatusDeclined
			case "tentative":
				return agenda.StatusTentative
			default:
				return agenda.StatusNeedsAction
			}
		}
	}
	if len(event.Attendees) > 0 {
		return agenda.StatusNeedsAction
	}
	return agenda.StatusAccepted
}

// hasMeetingLink reports whether the event carries a video-call link,
// via conference data, the legacy hangout link, or a pasted URL.
func hasMeetingLink(event *calendar.Event) bool {
	if event.HangoutLink != "" {
		return true
	}
	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" && ep.Uri != "" {
				return true
			}
		}
	}
	for _, host := range videoLinkHosts {
		if strings.Contains(event.Description, host) || strings.Contains(event.Location, host) {
			return true
		}
	}
	return false
}
