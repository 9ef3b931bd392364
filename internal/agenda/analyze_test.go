package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWindow() Window {
	return DayWindow(at(12, 0))
}

func TestDayWindow(t *testing.T) {
	w := DayWindow(at(15, 42))
	assert.Equal(t, at(9, 0), w.Start)
	assert.Equal(t, at(22, 0), w.End)
	assert.Equal(t, kolkata, w.Start.Location())
}

func TestAnalyzeEmptyDay(t *testing.T) {
	a := Analyze(nil, defaultWindow(), DefaultMinFree)

	require.Len(t, a.FreeBlocks, 1)
	assert.Equal(t, at(9, 0), a.FreeBlocks[0].Start)
	assert.Equal(t, at(22, 0), a.FreeBlocks[0].End)
	assert.Equal(t, 0, a.BackToBack)
	assert.Equal(t, 0, a.TotalEvents)
	assert.Equal(t, 0, a.TotalMeetings)
}

func TestAnalyzeBackToBack(t *testing.T) {
	events := []Event{
		mustEvent(t, "Daily Standup", at(9, 0), at(10, 0)),
		mustEvent(t, "Production Incident Review", at(10, 5), at(11, 0)),
		mustEvent(t, "Team Sync", at(11, 0), at(11, 30)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)

	// Gaps of 5min and 0min, both under the 15 minute threshold.
	assert.Equal(t, 2, a.BackToBack)
	assert.Equal(t, 3, a.TotalEvents)
	assert.Equal(t, 3, a.TotalMeetings)
	assert.Equal(t, 60+55+30, a.MeetingMinutes)
}

func TestAnalyzeOverlappingEventsCountAsBackToBack(t *testing.T) {
	events := []Event{
		mustEvent(t, "A", at(9, 0), at(10, 30)),
		mustEvent(t, "B", at(10, 0), at(11, 0)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)
	assert.Equal(t, 1, a.BackToBack)
}

func TestAnalyzeSingleEventFreeBlocks(t *testing.T) {
	events := []Event{
		mustEvent(t, "Quick List Review", at(14, 0), at(15, 0)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)

	require.Len(t, a.FreeBlocks, 2)
	assert.Equal(t, FreeBlock{Start: at(9, 0), End: at(14, 0)}, a.FreeBlocks[0])
	assert.Equal(t, FreeBlock{Start: at(15, 0), End: at(22, 0)}, a.FreeBlocks[1])
	assert.Equal(t, 5*time.Hour, a.FreeBlocks[0].Duration())
	assert.Equal(t, 0, a.BackToBack)
}

func TestAnalyzeClampsBoundaryBlocks(t *testing.T) {
	// Starts before the window opens: no "before" block, and the
	// "after" block begins where the event ends.
	events := []Event{
		mustEvent(t, "Early Review", at(8, 0), at(9, 30)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)

	require.Len(t, a.FreeBlocks, 1)
	assert.Equal(t, FreeBlock{Start: at(9, 30), End: at(22, 0)}, a.FreeBlocks[0])
}

func TestAnalyzeGapShorterThanMinFree(t *testing.T) {
	events := []Event{
		mustEvent(t, "A", at(9, 0), at(12, 0)),
		mustEvent(t, "B", at(12, 20), at(22, 0)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)

	// 20 minutes is under the 30 minute floor, so the day has no free
	// blocks, but the pair still counts toward nothing: a 20 minute
	// gap is also over the back-to-back threshold.
	assert.Empty(t, a.FreeBlocks)
	assert.Equal(t, 0, a.BackToBack)
}

func TestAnalyzeMinFreeConfigurable(t *testing.T) {
	events := []Event{
		mustEvent(t, "A", at(9, 0), at(12, 0)),
		mustEvent(t, "B", at(12, 20), at(22, 0)),
	}

	a := Analyze(events, defaultWindow(), 15*time.Minute)
	require.Len(t, a.FreeBlocks, 1)
	assert.Equal(t, FreeBlock{Start: at(12, 0), End: at(12, 20)}, a.FreeBlocks[0])
}

func TestAnalyzeSortsUnorderedInput(t *testing.T) {
	events := []Event{
		mustEvent(t, "Afternoon", at(15, 0), at(16, 0)),
		mustEvent(t, "Morning", at(9, 0), at(10, 0)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)

	require.Len(t, a.FreeBlocks, 2)
	assert.Equal(t, at(10, 0), a.FreeBlocks[0].Start)
	assert.Equal(t, at(15, 0), a.FreeBlocks[0].End)
}

func TestAnalyzeTotalsExcludeBlocks(t *testing.T) {
	events := []Event{
		mustEvent(t, "🎯 Focus Block: deep work", at(9, 0), at(11, 0)),
		mustEvent(t, "🚗 Commute", at(11, 0), at(11, 30)),
		mustEvent(t, "Customer call", at(12, 0), at(13, 0)),
	}

	a := Analyze(events, defaultWindow(), DefaultMinFree)

	assert.Equal(t, 3, a.TotalEvents)
	assert.Equal(t, 1, a.TotalMeetings)
	assert.Equal(t, 120, a.FocusMinutes)
	assert.Equal(t, 60, a.MeetingMinutes)
	// Focus and commute blocks still shape the free/busy timeline.
	assert.Equal(t, 2, a.BackToBack)
}

func TestAnalyzeStableOrderForIdenticalStarts(t *testing.T) {
	first := mustEvent(t, "First", at(10, 0), at(10, 30))
	second := mustEvent(t, "Second", at(10, 0), at(11, 0))

	a := Analyze([]Event{first, second}, defaultWindow(), DefaultMinFree)

	// Identical starts keep input order: the adjacent pair is
	// (First, Second) with a negative gap, hence back-to-back.
	assert.Equal(t, 1, a.BackToBack)
}
