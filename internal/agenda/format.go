package agenda

import (
	"fmt"
	"time"
)

// Clock formats a time as a compact 12-hour clock string, e.g. "2:30 PM".
func Clock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDuration renders a duration in whole minutes as "2h 30m",
// dropping zero components.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
