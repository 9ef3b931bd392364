package agenda

import (
	"fmt"
	"os"
	"time"
)

// DefaultTimezone is used when neither an explicit timezone nor the TZ
// environment variable is set.
const DefaultTimezone = "Asia/Kolkata"

// ResolveLocation resolves a timezone name to a location. An empty name
// falls back to the TZ environment variable, then to DefaultTimezone.
func ResolveLocation(name string) (*time.Location, error) {
	if name == "" {
		name = os.Getenv("TZ")
	}
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
