package services

import (
	"context"
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type TimeOffService struct {
	logger *slog.Logger
	client tava.Client
}

func (service *TimeOffService) requestClient(ctx context.Context) tava.Client {
	token := contexttools.GetValue[string](ctx, constants.AccessTokenContextKey)
	if token == nil {
		return service.client
	}

	return service.client.WithToken(*token)
}

func (service *TimeOffService) List(
	ctx context.Context,
	scope tava.TimeOffScope,
) ([]tava.TimeOffRequest, error) {
	return service.requestClient(ctx).GetTimeOff(ctx, scope)
}

func (service *TimeOffService) Create(
	ctx context.Context,
	payload tava.TimeOffPayload,
) (*tava.TimeOffRequest, error) {
	return service.requestClient(ctx).CreateTimeOff(ctx, payload)
}

func (service *TimeOffService) Cancel(
	ctx context.Context,
	requestID string,
) (*tava.TimeOffRequest, error) {
	return service.requestClient(ctx).CancelTimeOff(ctx, requestID)
}

func (service *TimeOffService) Review(
	ctx context.Context,
	requestID string,
	status tava.TimeOffStatus,
) (*tava.TimeOffRequest, error) {
	return service.requestClient(ctx).ReviewTimeOff(ctx, requestID, status)
}
