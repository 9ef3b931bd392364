package agenda

import (
	"sort"
	"time"
)

// Workday window defaults, matching the hours the schedule commands
// assume when none are configured.
const (
	DefaultWorkdayStartHour = 9
	DefaultWorkdayEndHour   = 22

	// DefaultMinFree is the minimum length a gap must have to be
	// reported as a free block.
	DefaultMinFree = 30 * time.Minute

	// backToBackGap is the threshold below which two adjacent events
	// count as back-to-back.
	backToBackGap = 15 * time.Minute
)

// Window is the workday span that bounds free-block detection.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the default workday window (09:00-22:00) for the
// day containing t, in t's location.
func DayWindow(t time.Time) Window {
	year, month, day := t.Date()
	loc := t.Location()
	return Window{
		Start: time.Date(year, month, day, DefaultWorkdayStartHour, 0, 0, 0, loc),
		End:   time.Date(year, month, day, DefaultWorkdayEndHour, 0, 0, 0, loc),
	}
}

// FreeBlock is a contiguous unscheduled interval within the workday
// window.
type FreeBlock struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the free block.
func (b FreeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Analysis summarizes one day's schedule.
type Analysis struct {
	FreeBlocks     []FreeBlock
	BackToBack     int
	TotalEvents    int
	TotalMeetings  int
	FocusMinutes   int
	MeetingMinutes int
}

// Analyze computes free blocks, the back-to-back count and time totals
// for a single day's events. Events need not be pre-sorted; they are
// ordered here by start time with a stable sort, so ties keep their
// input order. minFree values <= 0 fall back to DefaultMinFree.
//
// Free blocks cover the gap between the window start and the first
// event, the gaps between adjacent events, and the gap between the
// last event and the window end; boundary gaps are clamped, so an
// event spilling past a window edge suppresses that edge's block
// rather than producing a negative interval. An empty day yields the
// whole window as a single free block (assuming it meets minFree).
//
// The back-to-back count is pairwise only: adjacent events whose gap
// is under 15 minutes, overlapping pairs included. Boundary gaps never
// contribute to it.
func Analyze(events []Event, window Window, minFree time.Duration) Analysis {
	if minFree <= 0 {
		minFree = DefaultMinFree
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	a := Analysis{TotalEvents: len(sorted)}

	for _, e := range sorted {
		switch {
		case e.IsFocusBlock():
			a.FocusMinutes += e.DurationMinutes()
		case e.IsCommute():
			// Commute blocks count toward neither total.
		default:
			a.TotalMeetings++
			a.MeetingMinutes += e.DurationMinutes()
		}
	}

	if len(sorted) == 0 {
		if window.End.Sub(window.Start) >= minFree {
			a.FreeBlocks = append(a.FreeBlocks, FreeBlock{Start: window.Start, End: window.End})
		}
		return a
	}

	if gap := sorted[0].Start.Sub(window.Start); gap >= minFree {
		a.FreeBlocks = append(a.FreeBlocks, FreeBlock{Start: window.Start, End: sorted[0].Start})
	}

	for i := 0; i < len(sorted)-1; i++ {
		gap := sorted[i+1].Start.Sub(sorted[i].End)
		if gap >= minFree {
			a.FreeBlocks = append(a.FreeBlocks, FreeBlock{Start: sorted[i].End, End: sorted[i+1].Start})
		}
		if gap < backToBackGap {
			a.BackToBack++
		}
	}

	last := sorted[len(sorted)-1]
	if gap := window.End.Sub(last.End); gap >= minFree {
		a.FreeBlocks = append(a.FreeBlocks, FreeBlock{Start: last.End, End: window.End})
	}

	return a
}
