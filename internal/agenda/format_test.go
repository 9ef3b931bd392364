package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	assert.Equal(t, "9:00 AM", Clock(time.Date(2025, 3, 10, 9, 0, 0, 0, loc)))
	assert.Equal(t, "2:30 PM", Clock(time.Date(2025, 3, 10, 14, 30, 0, 0, loc)))
	assert.Equal(t, "12:05 AM", Clock(time.Date(2025, 3, 10, 0, 5, 0, 0, loc)))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Minute, "30m"},
		{60 * time.Minute, "1h"},
		{90 * time.Minute, "1h 30m"},
		{13 * time.Hour, "13h"},
		{0, "0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

func TestResolveLocation(t *testing.T) {
	t.Run("explicit name wins", func(t *testing.T) {
		t.Setenv("TZ", "America/New_York")
		loc, err := ResolveLocation("Europe/Berlin")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", loc.String())
	})

	t.Run("falls back to TZ env", func(t *testing.T) {
		t.Setenv("TZ", "America/New_York")
		loc, err := ResolveLocation("")
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", loc.String())
	})

	t.Run("defaults without TZ", func(t *testing.T) {
		t.Setenv("TZ", "")
		loc, err := ResolveLocation("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTimezone, loc.String())
	})

	t.Run("rejects unknown zone", func(t *testing.T) {
		_, err := ResolveLocation("Not/AZone")
		assert.Error(t, err)
	})
}
