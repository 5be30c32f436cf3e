package services

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

// requestClient binds the backend client to the session token of the
// current request, when there is one.
func (service *CalendarService) requestClient(ctx context.Context) tava.Client {
	token := contexttools.GetValue[string](ctx, constants.AccessTokenContextKey)
	if token == nil {
		return service.client
	}

	return service.client.WithToken(*token)
}

func (service *CalendarService) CreateTask(
	ctx context.Context,
	payload tava.TaskPayload,
) (*tava.Task, error) {
	return service.requestClient(ctx).CreateTask(ctx, payload)
}

func (service *CalendarService) GetTask(
	ctx context.Context,
	taskID string,
) (*tava.Task, error) {
	return service.requestClient(ctx).GetTask(ctx, taskID)
}

func (service *CalendarService) UpdateTask(
	ctx context.Context,
	taskID string,
	payload tava.TaskPayload,
) (*tava.Task, error) {
	return service.requestClient(ctx).UpdateTask(ctx, taskID, payload)
}

func (service *CalendarService) DeleteTask(ctx context.Context, taskID string) error {
	return service.requestClient(ctx).DeleteTask(ctx, taskID)
}

func (service *CalendarService) CreateMeeting(
	ctx context.Context,
	payload tava.MeetingPayload,
) (*tava.Meeting, error) {
	return service.requestClient(ctx).CreateMeeting(ctx, payload)
}

func (service *CalendarService) GetMeeting(
	ctx context.Context,
	meetingID string,
) (*tava.Meeting, error) {
	return service.requestClient(ctx).GetMeeting(ctx, meetingID)
}

func (service *CalendarService) UpdateMeeting(
	ctx context.Context,
	meetingID string,
	payload tava.MeetingPayload,
) (*tava.Meeting, error) {
	return service.requestClient(ctx).UpdateMeeting(ctx, meetingID, payload)
}

func (service *CalendarService) DeleteMeeting(
	ctx context.Context,
	meetingID string,
) error {
	return service.requestClient(ctx).DeleteMeeting(ctx, meetingID)
}

func (service *CalendarService) RespondToMeeting(
	ctx context.Context,
	meetingID string,
	response tava.AttendeeResponse,
) (*tava.Meeting, error) {
	return service.requestClient(ctx).RespondToMeeting(ctx, meetingID, response)
}
