package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/dayplan/internal/agenda"
	"github.com/teemow/dayplan/internal/calendar"
)

// calendarOpts holds the flags shared by every command that talks to a
// calendar.
type calendarOpts struct {
	account    string
	calendarID string
	timezone   string
	date       string
}

func addCalendarFlags(cmd *cobra.Command, o *calendarOpts) {
	cmd.Flags().StringVar(&o.account, "account", "default", "Google account name to use")
	cmd.Flags().StringVar(&o.calendarID, "calendar", "primary", "Calendar ID ('primary' for the primary calendar)")
	cmd.Flags().StringVar(&o.timezone, "timezone", "", "IANA timezone name (default: TZ env var, then "+agenda.DefaultTimezone+")")
	cmd.Flags().StringVar(&o.date, "date", "", "Day to operate on (YYYY-MM-DD, default: today)")
}

// resolve turns the timezone and date flags into a concrete day and
// location.
func (o *calendarOpts) resolve() (time.Time, *time.Location, error) {
	loc, err := agenda.ResolveLocation(o.timezone)
	if err != nil {
		return time.Time{}, nil, err
	}

	day := time.Now().In(loc)
	if o.date != "" {
		day, err = time.ParseInLocation("2006-01-02", o.date, loc)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", o.date, err)
		}
	}

	return day, loc, nil
}

// newClient creates a calendar client for the configured account, with
// a pointer to the auth command when no token is stored yet.
func (o *calendarOpts) newClient(ctx context.Context) (*calendar.Client, error) {
	if !calendar.HasTokenForAccount(o.account) {
		return nil, fmt.Errorf("no Google Calendar token for account %q; run 'dayplan auth --account %s' first", o.account, o.account)
	}

	client, err := calendar.NewClientForAccount(ctx, o.account)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", o.account, err)
	}
	return client, nil
}

// parseClock parses an "HH:MM" wall-clock time onto the given day.
func parseClock(day time.Time, loc *time.Location, s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// statusIcon maps an attendance status to the glyph the listings use.
func statusIcon(s agenda.Status) string {
	switch s {
	case agenda.StatusAccepted:
		return "✅"
	case agenda.StatusDeclined:
		return "❌"
	case agenda.StatusTentative:
		return "🤔"
	default:
		return "❔"
	}
}

// tierIcon maps a priority tier to the glyph the rank listing uses.
func tierIcon(t agenda.Tier) string {
	switch t {
	case agenda.TierCritical:
		return "🔴"
	case agenda.TierImportant:
		return "🟠"
	case agenda.TierModerate:
		return "🟡"
	default:
		return "⚪"
	}
}
