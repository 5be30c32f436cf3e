//nolint:exhaustruct,revive //ignore
package mocks

import (
	"context"
	"time"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

// MockedTavaClient serves canned backend data. Fixture fields can be
// swapped per test; Err fields make the matching call fail.
type MockedTavaClient struct {
	Account *tava.Account

	CalendarEvents    *tava.CalendarEventsResponse
	CalendarEventsErr error

	Epics    []tava.Epic
	EpicsErr error

	TimeOff    []tava.TimeOffRequest
	TimeOffErr error

	Task    *tava.Task
	Meeting *tava.Meeting
	Request *tava.TimeOffRequest

	LastTaskPayload    *tava.TaskPayload
	LastMeetingPayload *tava.MeetingPayload
	LastTimeOffPayload *tava.TimeOffPayload
	LastResponse       tava.AttendeeResponse
	LastReviewStatus   tava.TimeOffStatus
	LastTimeOffScope   tava.TimeOffScope
	DeletedIDs         []string
}

func NewMockedTavaClient() *MockedTavaClient {
	return &MockedTavaClient{
		Account: &tava.Account{
			ID:        "4001e9cf-3fbe-4b09-863f-bd1654cfbf76",
			Email:     "supervisor@example.com",
			FirstName: "Sam",
			LastName:  "Alder",
			Role:      "supervisor",
		},
		CalendarEvents: &tava.CalendarEventsResponse{
			Events:        []tava.CalendarEvent{},
			JiraConnected: false,
		},
		Task: &tava.Task{
			ID:        "task-1",
			Title:     "Task",
			Status:    tava.TaskStatusTodo,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Meeting: &tava.Meeting{
			ID:    "meeting-1",
			Title: "Meeting",
		},
		Request: &tava.TimeOffRequest{
			ID:     "request-1",
			Status: tava.TimeOffPending,
		},
	}
}

func (m *MockedTavaClient) WithToken(_ string) tava.Client {
	return m
}

func (m *MockedTavaClient) Token(
	_ context.Context,
	_ tava.TokenRequest,
) (*tava.TokenResponse, error) {
	return &tava.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}, nil
}

func (m *MockedTavaClient) Me(_ context.Context) (*tava.Account, error) {
	return m.Account, nil
}

func (m *MockedTavaClient) SignOut(_ context.Context) error {
	return nil
}

func (m *MockedTavaClient) GetCalendarEvents(
	_ context.Context,
	_ time.Time,
	_ time.Time,
) (*tava.CalendarEventsResponse, error) {
	if m.CalendarEventsErr != nil {
		return nil, m.CalendarEventsErr
	}
	return m.CalendarEvents, nil
}

func (m *MockedTavaClient) GetEpics(_ context.Context) ([]tava.Epic, error) {
	if m.EpicsErr != nil {
		return nil, m.EpicsErr
	}
	return m.Epics, nil
}

func (m *MockedTavaClient) CreateTask(
	_ context.Context,
	payload tava.TaskPayload,
) (*tava.Task, error) {
	m.LastTaskPayload = &payload
	return m.Task, nil
}

func (m *MockedTavaClient) GetTask(
	_ context.Context,
	_ string,
) (*tava.Task, error) {
	return m.Task, nil
}

func (m *MockedTavaClient) UpdateTask(
	_ context.Context,
	_ string,
	payload tava.TaskPayload,
) (*tava.Task, error) {
	m.LastTaskPayload = &payload
	return m.Task, nil
}

func (m *MockedTavaClient) DeleteTask(_ context.Context, taskID string) error {
	m.DeletedIDs = append(m.DeletedIDs, taskID)
	return nil
}

func (m *MockedTavaClient) CreateMeeting(
	_ context.Context,
	payload tava.MeetingPayload,
) (*tava.Meeting, error) {
	m.LastMeetingPayload = &payload
	return m.Meeting, nil
}

func (m *MockedTavaClient) GetMeeting(
	_ context.Context,
	_ string,
) (*tava.Meeting, error) {
	return m.Meeting, nil
}

func (m *MockedTavaClient) UpdateMeeting(
	_ context.Context,
	_ string,
	payload tava.MeetingPayload,
) (*tava.Meeting, error) {
	m.LastMeetingPayload = &payload
	return m.Meeting, nil
}

func (m *MockedTavaClient) DeleteMeeting(_ context.Context, meetingID string) error {
	m.DeletedIDs = append(m.DeletedIDs, meetingID)
	return nil
}

func (m *MockedTavaClient) RespondToMeeting(
	_ context.Context,
	_ string,
	response tava.AttendeeResponse,
) (*tava.Meeting, error) {
	m.LastResponse = response
	return m.Meeting, nil
}

func (m *MockedTavaClient) GetTimeOff(
	_ context.Context,
	scope tava.TimeOffScope,
) ([]tava.TimeOffRequest, error) {
	m.LastTimeOffScope = scope
	if m.TimeOffErr != nil {
		return nil, m.TimeOffErr
	}
	return m.TimeOff, nil
}

func (m *MockedTavaClient) CreateTimeOff(
	_ context.Context,
	payload tava.TimeOffPayload,
) (*tava.TimeOffRequest, error) {
	m.LastTimeOffPayload = &payload
	return m.Request, nil
}

func (m *MockedTavaClient) CancelTimeOff(
	_ context.Context,
	_ string,
) (*tava.TimeOffRequest, error) {
	return m.Request, nil
}

func (m *MockedTavaClient) ReviewTimeOff(
	_ context.Context,
	_ string,
	status tava.TimeOffStatus,
) (*tava.TimeOffRequest, error) {
	m.LastReviewStatus = status
	return m.Request, nil
}
