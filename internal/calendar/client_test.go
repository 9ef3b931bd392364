package calendar

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/dayplan/internal/agenda"
)

var kolkata = time.FixedZone("IST", 5*3600+1800)

func TestToAgendaEvent(t *testing.T) {
	raw := &calendar.Event{
		Id:          "abc123",
		Summary:     "Team Sync",
		Description: "Agenda: weekly review",
		Location:    "Room 4",
		Start:       &calendar.EventDateTime{DateTime: "2025-03-10T10:00:00+05:30"},
		End:         &calendar.EventDateTime{DateTime: "2025-03-10T10:30:00+05:30"},
		Attendees: []*calendar.EventAttendee{
			{Email: "organizer@example.com", ResponseStatus: "accepted"},
			{Email: "me@example.com", Self: true, ResponseStatus: "tentative"},
		},
	}

	e, err := toAgendaEvent(raw, kolkata)
	if err != nil {
		t.Fatalf("toAgendaEvent() error = %v", err)
	}

	if e.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", e.ID)
	}
	if e.Title != "Team Sync" {
		t.Errorf("Title = %q, want Team Sync", e.Title)
	}
	if e.Status != agenda.StatusTentative {
		t.Errorf("Status = %q, want tentative", e.Status)
	}
	if e.DurationMinutes() != 30 {
		t.Errorf("DurationMinutes() = %d, want 30", e.DurationMinutes())
	}
	if got := e.Start.Hour(); got != 10 {
		t.Errorf("Start hour in IST = %d, want 10", got)
	}
	if len(e.Attendees) != 2 {
		t.Errorf("Attendees = %v, want 2 entries", e.Attendees)
	}
	if e.MeetingLink {
		t.Error("MeetingLink = true, want false for event without video link")
	}
}

func TestToAgendaEventAllDay(t *testing.T) {
	raw := &calendar.Event{
		Id:      "allday1",
		Summary: "Offsite",
		Start:   &calendar.EventDateTime{Date: "2025-03-10"},
		End:     &calendar.EventDateTime{Date: "2025-03-11"},
	}

	e, err := toAgendaEvent(raw, kolkata)
	if err != nil {
		t.Fatalf("toAgendaEvent() error = %v", err)
	}

	wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, kolkata)
	if !e.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want midnight in IST (%v)", e.Start, wantStart)
	}
	if e.DurationMinutes() != 24*60 {
		t.Errorf("DurationMinutes() = %d, want %d", e.DurationMinutes(), 24*60)
	}
	// Events without attendees are the user's own
	if e.Status != agenda.StatusAccepted {
		t.Errorf("Status = %q, want accepted for attendee-less event", e.Status)
	}
}

func TestToAgendaEventMalformed(t *testing.T) {
	tests := []struct {
		name  string
		event *calendar.Event
	}{
		{"nil event", nil},
		{"missing start", &calendar.Event{
			Summary: "Broken",
			End:     &calendar.EventDateTime{DateTime: "2025-03-10T10:00:00+05:30"},
		}},
		{"unparseable time", &calendar.Event{
			Summary: "Broken",
			Start:   &calendar.EventDateTime{DateTime: "not-a-time"},
			End:     &calendar.EventDateTime{DateTime: "2025-03-10T10:00:00+05:30"},
		}},
		{"inverted interval", &calendar.Event{
			Summary: "Backwards",
			Start:   &calendar.EventDateTime{DateTime: "2025-03-10T11:00:00+05:30"},
			End:     &calendar.EventDateTime{DateTime: "2025-03-10T10:00:00+05:30"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := toAgendaEvent(tt.event, kolkata); err == nil {
				t.Error("toAgendaEvent() error = nil, want error")
			}
		})
	}
}

func TestSelfStatus(t *testing.T) {
	tests := []struct {
		name  string
		event *calendar.Event
		want  agenda.Status
	}{
		{
			name:  "no attendees means own event",
			event: &calendar.Event{},
			want:  agenda.StatusAccepted,
		},
		{
			name: "self accepted",
			event: &calendar.Event{Attendees: []*calendar.EventAttendee{
				{Email: "me@example.com", Self: true, ResponseStatus: "accepted"},
			}},
			want: agenda.StatusAccepted,
		},
		{
			name: "self declined",
			event: &calendar.Event{Attendees: []*calendar.EventAttendee{
				{Email: "other@example.com", ResponseStatus: "accepted"},
				{Email: "me@example.com", Self: true, ResponseStatus: "declined"},
			}},
			want: agenda.StatusDeclined,
		},
		{
			name: "self without response",
			event: &calendar.Event{Attendees: []*calendar.EventAttendee{
				{Email: "me@example.com", Self: true, ResponseStatus: "needsAction"},
			}},
			want: agenda.StatusNeedsAction,
		},
		{
			name: "attendees but no self entry",
			event: &calendar.Event{Attendees: []*calendar.EventAttendee{
				{Email: "other@example.com", ResponseStatus: "accepted"},
			}},
			want: agenda.StatusNeedsAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selfStatus(tt.event); got != tt.want {
				t.Errorf("selfStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasMeetingLink(t *testing.T) {
	tests := []struct {
		name  string
		event *calendar.Event
		want  bool
	}{
		{
			name:  "hangout link",
			event: &calendar.Event{HangoutLink: "https://meet.google.com/abc-defg-hij"},
			want:  true,
		},
		{
			name: "conference data video entry point",
			event: &calendar.Event{ConferenceData: &calendar.ConferenceData{
				EntryPoints: []*calendar.EntryPoint{
					{EntryPointType: "video", Uri: "https://meet.google.com/xyz"},
				},
			}},
			want: true,
		},
		{
			name:  "zoom link in description",
			event: &calendar.Event{Description: "Join: https://company.zoom.us/j/123456"},
			want:  true,
		},
		{
			name:  "teams link in location",
			event: &calendar.Event{Location: "https://teams.microsoft.com/l/meetup-join/123"},
			want:  true,
		},
		{
			name:  "plain room meeting",
			event: &calendar.Event{Location: "Room 4", Description: "In person"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasMeetingLink(tt.event); got != tt.want {
				t.Errorf("hasMeetingLink() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	// Test that HasTokenForAccount returns a boolean for valid account name
	result := HasTokenForAccount("test-account")
	_ = result

	// Test with nil provider
	if HasTokenForAccountWithProvider("default", nil) {
		t.Error("Expected false for nil provider")
	}
}

func TestEventInputBlocks(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, kolkata)

	focus := EventInput{
		Summary:         agenda.FocusBlockTitle("Deep work"),
		Start:           now,
		End:             now.Add(90 * time.Minute),
		ColorID:         focusColorID,
		ReminderMinutes: focusReminderMinutes,
	}
	e := agenda.Event{Title: focus.Summary}
	if !e.IsFocusBlock() {
		t.Errorf("focus block title %q not recognized", focus.Summary)
	}

	commute := EventInput{
		Summary:         agenda.CommuteTitle(),
		Start:           now,
		End:             now.Add(30 * time.Minute),
		ColorID:         commuteColorID,
		ReminderMinutes: commuteReminderMinutes,
	}
	e = agenda.Event{Title: commute.Summary}
	if !e.IsCommute() {
		t.Errorf("commute title %q not recognized", commute.Summary)
	}
}
