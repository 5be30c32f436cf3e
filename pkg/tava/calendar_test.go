package tava_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

func TestEpicEvent(t *testing.T) {
	start := tava.NewDate(2024, 4, 28)
	due := tava.NewDate(2024, 5, 3)

	event, ok := tava.EpicEvent(tava.Epic{
		Key:       "PROJ-1",
		Summary:   "Epic X",
		URL:       "https://jira.example.com/PROJ-1",
		StartDate: &start,
		DueDate:   &due,
	})

	require.True(t, ok)
	assert.Equal(t, "epic-PROJ-1", event.ID)
	assert.Equal(t, tava.EventTypeEpic, event.Type)
	assert.Equal(t, "Epic X", event.Title)
	assert.True(t, event.AllDay)
	assert.Equal(t, start.Time, event.Start.Time)
	require.NotNil(t, event.End)
	assert.Equal(t, due.Time, event.End.Time)
}

func TestEpicEventWithoutDates(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	_, ok := tava.EpicEvent(tava.Epic{Key: "PROJ-2", Summary: "Epic Y"})
	assert.False(t, ok)
}

func TestEpicEventSingleDate(t *testing.T) {
	due := tava.NewDate(2024, 5, 10)

	//nolint:exhaustruct //other fields are optional
	event, ok := tava.EpicEvent(tava.Epic{Key: "PROJ-3", DueDate: &due})

	require.True(t, ok)
	assert.Equal(t, due.Time, event.Start.Time)
	assert.Equal(t, due.Time, event.End.Time)
}

func TestTimeOffEvent(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	request := tava.TimeOffRequest{
		ID:        "8",
		StartDate: tava.NewDate(2024, 5, 13),
		EndDate:   tava.NewDate(2024, 5, 17),
		Status:    tava.TimeOffApproved,
	}

	event := tava.TimeOffEvent(request)

	assert.Equal(t, "time_off-8", event.ID)
	assert.Equal(t, tava.EventTypeTimeOff, event.Type)
	assert.Equal(t, "Time Off", event.Title)
	assert.True(t, event.AllDay)
	require.NotNil(t, event.TimeOffRequest)
	assert.Equal(t, "8", event.TimeOffRequest.ID)
}

func TestOverlaps(t *testing.T) {
	windowStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	interval := func(start, end time.Time) tava.CalendarEvent {
		//nolint:exhaustruct //other fields are optional
		return tava.CalendarEvent{
			Start: tava.Timestamp{Time: start},
			End:   &tava.Timestamp{Time: end},
		}
	}

	day := func(month time.Month, dayOfMonth int) time.Time {
		return time.Date(2024, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
	}

	assert.True(t, interval(day(5, 10), day(5, 12)).Overlaps(windowStart, windowEnd))
	assert.True(t, interval(day(4, 20), day(5, 1)).Overlaps(windowStart, windowEnd))
	assert.True(t, interval(day(5, 31), day(6, 10)).Overlaps(windowStart, windowEnd))
	assert.True(t, interval(day(4, 1), day(6, 30)).Overlaps(windowStart, windowEnd))
	assert.False(t, interval(day(4, 20), day(4, 30)).Overlaps(windowStart, windowEnd))
	assert.False(t, interval(day(6, 1), day(6, 10)).Overlaps(windowStart, windowEnd))

	// an event without an end spans a single instant
	//nolint:exhaustruct //other fields are optional
	pointEvent := tava.CalendarEvent{Start: tava.Timestamp{Time: day(5, 15)}}
	assert.True(t, pointEvent.Overlaps(windowStart, windowEnd))
}
