package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/services"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/config"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/mocks"
	sharedmodels "github.com/dallinbsmith/tava-team-dashboard-sub001/internal/models"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

//nolint:gochecknoglobals //needed for tests
var mayStart = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

//nolint:gochecknoglobals //needed for tests
var mayEnd = time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

func newCalendarService(client tava.Client) *services.CalendarService {
	//nolint:exhaustruct //other fields are optional
	cfg := config.Config{WebURL: "http://localhost:8000"}

	return services.New(
		logging.NewNopLogger(),
		cfg,
		client,
		mocks.NewMockedAuthService(sharedmodels.User{}), //nolint:exhaustruct //ignore
	).Calendar
}

func taskEvent(id string, title string, date time.Time) tava.CalendarEvent {
	//nolint:exhaustruct //other fields are optional
	return tava.CalendarEvent{
		ID:    id,
		Type:  tava.EventTypeTask,
		Title: title,
		Start: tava.Timestamp{Time: date},
	}
}

func datePtr(year int, month time.Month, day int) *tava.Date {
	date := tava.NewDate(year, month, day)
	return &date
}

func TestWindow(t *testing.T) {
	start, end := services.Window(time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), end)

	// month arithmetic across a year boundary, into a leap February
	start, end = services.Window(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestEventsForWindowMergesEpics(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events: []tava.CalendarEvent{
			taskEvent("task-a", "Task A", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		},
		JiraConnected: true,
	}
	client.Epics = []tava.Epic{
		{
			Key:       "PROJ-1",
			Summary:   "Epic X",
			URL:       "https://jira.example.com/PROJ-1",
			StartDate: datePtr(2024, 4, 28),
			DueDate:   datePtr(2024, 5, 3),
		},
		{
			Key:       "PROJ-2",
			Summary:   "Epic Y",
			URL:       "https://jira.example.com/PROJ-2",
			StartDate: datePtr(2024, 6, 1),
			DueDate:   datePtr(2024, 6, 5),
		},
		{
			Key:       "PROJ-3",
			Summary:   "Epic without dates",
			URL:       "https://jira.example.com/PROJ-3",
			StartDate: nil,
			DueDate:   nil,
		},
	}

	service := newCalendarService(client)

	events, jiraConnected, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		false,
	)

	require.NoError(t, err)
	assert.True(t, jiraConnected)
	require.Len(t, events, 2)
	assert.Equal(t, "task-a", events[0].Source.ID)
	assert.Equal(t, "epic-PROJ-1", events[1].Source.ID)
}

func TestEventsForWindowEpicSingleDate(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events:        []tava.CalendarEvent{},
		JiraConnected: true,
	}
	//nolint:exhaustruct //other fields are optional
	client.Epics = []tava.Epic{
		{
			Key:     "PROJ-9",
			Summary: "Due-only epic",
			DueDate: datePtr(2024, 5, 10),
		},
	}

	service := newCalendarService(client)

	events, _, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		false,
	)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, events[0].Start, events[0].End)
}

func TestEventsForWindowBoundaries(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events:        []tava.CalendarEvent{},
		JiraConnected: true,
	}
	//nolint:exhaustruct //other fields are optional
	client.Epics = []tava.Epic{
		{
			Key:       "ENDS-ON-START",
			StartDate: datePtr(2024, 4, 20),
			DueDate:   datePtr(2024, 5, 1),
		},
		{
			Key:       "STARTS-ON-END",
			StartDate: datePtr(2024, 5, 31),
			DueDate:   datePtr(2024, 6, 10),
		},
		{
			Key:       "BEFORE",
			StartDate: datePtr(2024, 4, 20),
			DueDate:   datePtr(2024, 4, 30),
		},
		{
			Key:       "AFTER",
			StartDate: datePtr(2024, 6, 1),
			DueDate:   datePtr(2024, 6, 10),
		},
	}

	service := newCalendarService(client)

	events, _, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		false,
	)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "epic-ENDS-ON-START", events[0].Source.ID)
	assert.Equal(t, "epic-STARTS-ON-END", events[1].Source.ID)
}

func TestEventsForWindowTeamTimeOff(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	ownRequest := tava.TimeOffRequest{
		ID:        "7",
		StartDate: tava.NewDate(2024, 5, 6),
		EndDate:   tava.NewDate(2024, 5, 8),
		Status:    tava.TimeOffApproved,
	}

	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events:        []tava.CalendarEvent{tava.TimeOffEvent(ownRequest)},
		JiraConnected: false,
	}
	//nolint:exhaustruct //other fields are optional
	client.TimeOff = []tava.TimeOffRequest{
		ownRequest,
		{
			ID:        "8",
			Requester: &tava.Requester{ID: "u2", FirstName: "Dana", LastName: "Reed"},
			StartDate: tava.NewDate(2024, 5, 13),
			EndDate:   tava.NewDate(2024, 5, 17),
			Status:    tava.TimeOffApproved,
		},
		{
			ID:        "9",
			StartDate: tava.NewDate(2024, 5, 20),
			EndDate:   tava.NewDate(2024, 5, 21),
			Status:    tava.TimeOffPending,
		},
		{
			ID:        "10",
			StartDate: tava.NewDate(2024, 3, 4),
			EndDate:   tava.NewDate(2024, 3, 8),
			Status:    tava.TimeOffApproved,
		},
	}

	service := newCalendarService(client)

	events, _, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		true,
	)

	require.NoError(t, err)
	assert.Equal(t, tava.TimeOffScopeTeam, client.LastTimeOffScope)

	// the duplicate of request 7, the pending request and the
	// out-of-window request are all dropped
	require.Len(t, events, 2)
	assert.Equal(t, "time_off-7", events[0].Source.ID)
	assert.Equal(t, "time_off-8", events[1].Source.ID)
	assert.Equal(t, "Dana Reed: Time Off", events[1].Title)
}

func TestEventsForWindowSkipsTeamTimeOffWhenNotRequested(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	//nolint:exhaustruct //other fields are optional
	client.TimeOff = []tava.TimeOffRequest{
		{
			ID:        "8",
			StartDate: tava.NewDate(2024, 5, 13),
			EndDate:   tava.NewDate(2024, 5, 17),
			Status:    tava.TimeOffApproved,
		},
	}

	service := newCalendarService(client)

	events, _, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		false,
	)

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, tava.TimeOffScope(""), client.LastTimeOffScope)
}

func TestEventsForWindowEpicsFailureDegrades(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events: []tava.CalendarEvent{
			taskEvent("task-a", "Task A", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		},
		JiraConnected: true,
	}
	client.EpicsErr = errors.New("jira is down")
	//nolint:exhaustruct //other fields are optional
	client.TimeOff = []tava.TimeOffRequest{
		{
			ID:        "8",
			StartDate: tava.NewDate(2024, 5, 13),
			EndDate:   tava.NewDate(2024, 5, 17),
			Status:    tava.TimeOffApproved,
		},
	}

	service := newCalendarService(client)

	events, jiraConnected, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		true,
	)

	require.NoError(t, err)
	assert.True(t, jiraConnected)
	require.Len(t, events, 2)
	assert.Equal(t, "task-a", events[0].Source.ID)
	assert.Equal(t, "time_off-8", events[1].Source.ID)
}

func TestEventsForWindowTeamTimeOffFailureDegrades(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events: []tava.CalendarEvent{
			taskEvent("task-a", "Task A", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)),
		},
		JiraConnected: false,
	}
	client.TimeOffErr = errors.New("timeout")

	service := newCalendarService(client)

	events, _, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		true,
	)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "task-a", events[0].Source.ID)
}

func TestEventsForWindowPrimaryFailure(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEventsErr = errors.New("backend unreachable")

	service := newCalendarService(client)

	events, _, err := service.EventsForWindow(
		context.Background(),
		mayStart,
		mayEnd,
		false,
	)

	require.Error(t, err)
	assert.Nil(t, events)
}

func TestEventsForMonthPadsWindow(t *testing.T) {
	client := mocks.NewMockedTavaClient()
	client.CalendarEvents = &tava.CalendarEventsResponse{
		Events:        []tava.CalendarEvent{},
		JiraConnected: true,
	}
	//nolint:exhaustruct //other fields are optional
	client.Epics = []tava.Epic{
		{
			Key:       "PREV-MONTH",
			StartDate: datePtr(2024, 4, 5),
			DueDate:   datePtr(2024, 4, 6),
		},
	}

	service := newCalendarService(client)

	events, _, err := service.EventsForMonth(
		context.Background(),
		time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		false,
	)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "epic-PREV-MONTH", events[0].Source.ID)
}
