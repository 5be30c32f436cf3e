package tava

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const MeetingsEndpoint = "calendar/meetings"

type AttendeeResponse string

const (
	ResponseAccepted  AttendeeResponse = "accepted"
	ResponseDeclined  AttendeeResponse = "declined"
	ResponseTentative AttendeeResponse = "tentative"
	ResponsePending   AttendeeResponse = "pending"
)

type Attendee struct {
	UserID    string           `json:"user_id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Response  AttendeeResponse `json:"response"`
}

type Meeting struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    Timestamp  `json:"starts_at"`
	EndsAt      Timestamp  `json:"ends_at"`
	Attendees   []Attendee `json:"attendees"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MeetingPayload struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	StartsAt    Timestamp   `json:"starts_at"`
	EndsAt      Timestamp   `json:"ends_at"`
	AttendeeIDs []string    `json:"attendee_ids,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
}

type meetingResponsePayload struct {
	Response AttendeeResponse `json:"response"`
}

func (client client) CreateMeeting(
	ctx context.Context,
	payload MeetingPayload,
) (*Meeting, error) {
	var meeting *Meeting
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		MeetingsEndpoint,
		"",
		payload,
		&meeting,
	)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

func (client client) GetMeeting(
	ctx context.Context,
	meetingID string,
) (*Meeting, error) {
	endpoint := fmt.Sprintf("%s/%s", MeetingsEndpoint, meetingID)

	var meeting *Meeting
	err := client.sendRequest(ctx, http.MethodGet, endpoint, "", nil, &meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

func (client client) UpdateMeeting(
	ctx context.Context,
	meetingID string,
	payload MeetingPayload,
) (*Meeting, error) {
	endpoint := fmt.Sprintf("%s/%s", MeetingsEndpoint, meetingID)

	var meeting *Meeting
	err := client.sendRequest(ctx, http.MethodPut, endpoint, "", payload, &meeting)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

func (client client) DeleteMeeting(ctx context.Context, meetingID string) error {
	endpoint := fmt.Sprintf("%s/%s", MeetingsEndpoint, meetingID)
	return client.sendRequest(ctx, http.MethodDelete, endpoint, "", nil, nil)
}

func (client client) RespondToMeeting(
	ctx context.Context,
	meetingID string,
	response AttendeeResponse,
) (*Meeting, error) {
	endpoint := fmt.Sprintf("%s/%s/respond", MeetingsEndpoint, meetingID)

	var meeting *Meeting
	err := client.sendRequest(
		ctx,
		http.MethodPost,
		endpoint,
		"",
		meetingResponsePayload{Response: response},
		&meeting,
	)
	if err != nil {
		return nil, err
	}

	return meeting, nil
}
