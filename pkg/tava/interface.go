package tava

import (
	"context"
	"time"
)

type Client interface {
	WithToken(accessToken string) Client

	Token(ctx context.Context, tokenRequest TokenRequest) (*TokenResponse, error)
	Me(ctx context.Context) (*Account, error)
	SignOut(ctx context.Context) error

	GetCalendarEvents(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (*CalendarEventsResponse, error)
	GetEpics(ctx context.Context) ([]Epic, error)

	CreateTask(ctx context.Context, payload TaskPayload) (*Task, error)
	GetTask(ctx context.Context, taskID string) (*Task, error)
	UpdateTask(ctx context.Context, taskID string, payload TaskPayload) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	CreateMeeting(ctx context.Context, payload MeetingPayload) (*Meeting, error)
	GetMeeting(ctx context.Context, meetingID string) (*Meeting, error)
	UpdateMeeting(
		ctx context.Context,
		meetingID string,
		payload MeetingPayload,
	) (*Meeting, error)
	DeleteMeeting(ctx context.Context, meetingID string) error
	RespondToMeeting(
		ctx context.Context,
		meetingID string,
		response AttendeeResponse,
	) (*Meeting, error)

	GetTimeOff(ctx context.Context, scope TimeOffScope) ([]TimeOffRequest, error)
	CreateTimeOff(ctx context.Context, payload TimeOffPayload) (*TimeOffRequest, error)
	CancelTimeOff(ctx context.Context, requestID string) (*TimeOffRequest, error)
	ReviewTimeOff(
		ctx context.Context,
		requestID string,
		status TimeOffStatus,
	) (*TimeOffRequest, error)
}
