package tava

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const TimeOffEndpoint = "time-off"

type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffDenied   TimeOffStatus = "denied"
	TimeOffCanceled TimeOffStatus = "canceled"
)

type TimeOffScope string

const (
	TimeOffScopeSelf TimeOffScope = "self"
	TimeOffScopeTeam TimeOffScope = "team"
)

type Requester struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TimeOffRequest struct {
	ID        string        `json:"id"`
	Requester *Requester    `json:"requester"`
	StartDate Date          `json:"start_date"`
	EndDate   Date          `json:"end_date"`
	Status    TimeOffStatus `json:"status"`
	Note      string        `json:"note"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type TimeOffPayload struct {
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Note      string `json:"note,omitempty"`
}

type timeOffReviewPayload struct {
	Status TimeOffStatus `json:"status"`
}

func (client client) GetTimeOff(
	ctx context.Context,
	scope TimeOffScope,
) ([]TimeOffRequest, error) {
	query := url.Values{}
	query.Set("scope", string(scope))

	var requests []TimeOffRequest
	err := client.sendRequest(
		ctx,
		http.MethodGet,
		TimeOffEndpoint,
		query.Encode(),
		nil,
		&requests,
	)
	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (client client) CreateTimeOff(
	ctx context.Context,
	payload TimeOffPayload,
) (*TimeOffRequest, error) {
	var request *TimeOffRequest
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		TimeOffEndpoint,
		"",
		payload,
		&request,
	)
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (client client) CancelTimeOff(
	ctx context.Context,
	requestID string,
) (*TimeOffRequest, error) {
	endpoint := fmt.Sprintf("%s/%s/cancel", TimeOffEndpoint, requestID)

	var request *TimeOffRequest
	err := client.sendRequest(ctx, http.MethodPost, endpoint, "", nil, &request)
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (client client) ReviewTimeOff(
	ctx context.Context,
	requestID string,
	status TimeOffStatus,
) (*TimeOffRequest, error) {
	endpoint := fmt.Sprintf("%s/%s/review", TimeOffEndpoint, requestID)

	var request *TimeOffRequest
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		endpoint,
		"",
		timeOffReviewPayload{Status: status},
		&request,
	)
	if err != nil {
		return nil, err
	}

	return request, nil
}
