package agenda

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidInterval is returned when an event's end precedes its start.
var ErrInvalidInterval = errors.New("event end precedes start")

// Status is the viewing user's own response to an event, not the
// organizer's state.
type Status string

// Response statuses as reported by the Calendar API.
const (
	StatusAccepted    Status = "accepted"
	StatusDeclined    Status = "declined"
	StatusTentative   Status = "tentative"
	StatusNeedsAction Status = "needsAction"
)

// Title markers for self-scheduled blocks. The emoji variants match
// what the create commands produce; the keyword variants catch blocks
// created by hand.
const (
	focusMarker   = "Focus Block"
	focusEmoji    = "🎯"
	commuteMarker = "Commute"
	commuteEmoji  = "🚗"
)

// Event is a normalized calendar entry for one day. The time span is
// immutable after construction; derived properties are computed from
// the title on demand and never stored.
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Status      Status
	Location    string
	Description string
	Attendees   []string
	MeetingLink bool
}

// NewEvent constructs an Event from its required fields. It fails with
// ErrInvalidInterval if end precedes start; a zero-duration event
// (end == start) is permitted as a degenerate zero-width interval.
func NewEvent(id, title string, start, end time.Time, status Status) (Event, error) {
	if end.Before(start) {
		return Event{}, fmt.Errorf("event %q (%s - %s): %w", title,
			start.Format(time.RFC3339), end.Format(time.RFC3339), ErrInvalidInterval)
	}
	return Event{
		ID:     id,
		Title:  title,
		Start:  start,
		End:    end,
		Status: status,
	}, nil
}

// DurationMinutes returns the event length rounded to whole minutes.
func (e Event) DurationMinutes() int {
	return int(math.Round(e.End.Sub(e.Start).Minutes()))
}

// IsFocusBlock reports whether the event is a self-scheduled deep-work
// block, detected from the reserved title markers.
func (e Event) IsFocusBlock() bool {
	return strings.Contains(e.Title, focusMarker) || strings.Contains(e.Title, focusEmoji)
}

// IsCommute reports whether the event is a self-scheduled travel or
// buffer block.
func (e Event) IsCommute() bool {
	return strings.Contains(e.Title, commuteMarker) || strings.Contains(e.Title, commuteEmoji)
}

// IsMeeting reports whether the event counts as an ordinary meeting,
// i.e. neither a focus block nor a commute block.
func (e Event) IsMeeting() bool {
	return !e.IsFocusBlock() && !e.IsCommute()
}

// FocusBlockTitle returns the reserved title for a focus block with the
// given label, so created blocks are recognized by IsFocusBlock.
func FocusBlockTitle(label string) string {
	return focusEmoji + " " + focusMarker + ": " + label
}

// CommuteTitle returns the reserved title for a commute block.
func CommuteTitle() string {
	return commuteEmoji + " " + commuteMarker
}
