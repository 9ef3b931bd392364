package cmd

import (
	"testing"
	"time"

	"github.com/teemow/dayplan/internal/agenda"
)

func TestParseClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	day := time.Date(2026, time.March, 2, 17, 45, 0, 0, loc)

	tests := []struct {
		name     string
		input    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{
			name:     "morning time",
			input:    "09:00",
			wantHour: 9,
			wantMin:  0,
		},
		{
			name:     "evening time",
			input:    "21:30",
			wantHour: 21,
			wantMin:  30,
		},
		{
			name:    "missing minutes",
			input:   "9",
			wantErr: true,
		},
		{
			name:    "12-hour format not accepted",
			input:   "9:00 PM",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClock(day, loc, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMin {
				t.Errorf("parseClock(%q) = %v, want %02d:%02d", tt.input, got, tt.wantHour, tt.wantMin)
			}
			if got.Year() != day.Year() || got.Month() != day.Month() || got.Day() != day.Day() {
				t.Errorf("parseClock(%q) landed on %v, want the given day", tt.input, got)
			}
			if got.Location() != loc {
				t.Errorf("parseClock(%q) location = %v, want %v", tt.input, got.Location(), loc)
			}
		})
	}
}

func TestCalendarOptsResolve(t *testing.T) {
	t.Run("explicit date and timezone", func(t *testing.T) {
		opts := calendarOpts{date: "2026-03-02", timezone: "UTC"}

		day, loc, err := opts.resolve()
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if loc.String() != "UTC" {
			t.Errorf("location = %v, want UTC", loc)
		}
		want := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
		if !day.Equal(want) {
			t.Errorf("day = %v, want %v", day, want)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		opts := calendarOpts{date: "March 2nd", timezone: "UTC"}
		if _, _, err := opts.resolve(); err == nil {
			t.Error("expected error for malformed date")
		}
	})

	t.Run("invalid timezone", func(t *testing.T) {
		opts := calendarOpts{timezone: "Nowhere/Charming"}
		if _, _, err := opts.resolve(); err == nil {
			t.Error("expected error for unknown timezone")
		}
	})
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status agenda.Status
		want   string
	}{
		{agenda.StatusAccepted, "✅"},
		{agenda.StatusDeclined, "❌"},
		{agenda.StatusTentative, "🤔"},
		{agenda.StatusNeedsAction, "❔"},
	}

	for _, tt := range tests {
		if got := statusIcon(tt.status); got != tt.want {
			t.Errorf("statusIcon(%s) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestTierIcon(t *testing.T) {
	// Every tier should resolve to a distinct glyph
	seen := make(map[string]agenda.Tier)
	for _, tier := range agenda.Tiers {
		icon := tierIcon(tier)
		if icon == "" {
			t.Errorf("tierIcon(%s) is empty", tier)
		}
		if prev, dup := seen[icon]; dup {
			t.Errorf("tiers %s and %s share icon %s", prev, tier, icon)
		}
		seen[icon] = tier
	}
}
