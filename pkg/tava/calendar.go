package tava

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const CalendarEventsEndpoint = "calendar/events"

type EventType string

const (
	EventTypeTask    EventType = "task"
	EventTypeMeeting EventType = "meeting"
	EventTypeTimeOff EventType = "time_off"
	EventTypeJira    EventType = "jira"
	EventTypeEpic    EventType = "epic"
)

// CalendarEvent is a discriminated union: exactly one payload
// field is set and it matches Type. Events synthesized from a
// non-native source carry an ID of the form "<source>-<id>".
type CalendarEvent struct {
	ID     string     `json:"id"`
	Type   EventType  `json:"type"`
	Title  string     `json:"title"`
	Start  Timestamp  `json:"start"`
	End    *Timestamp `json:"end,omitempty"`
	AllDay bool       `json:"all_day"`
	URL    string     `json:"url,omitempty"`

	Task           *Task           `json:"task,omitempty"`
	Meeting        *Meeting        `json:"meeting,omitempty"`
	TimeOffRequest *TimeOffRequest `json:"time_off_request,omitempty"`
	Epic           *Epic           `json:"epic,omitempty"`
}

type CalendarEventsResponse struct {
	Events        []CalendarEvent `json:"events"`
	JiraConnected bool            `json:"jira_connected"`
}

func (client client) GetCalendarEvents(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (*CalendarEventsResponse, error) {
	query := url.Values{}
	query.Set("start", start.Format("2006-01-02"))
	query.Set("end", end.Format("2006-01-02"))

	var response *CalendarEventsResponse
	err := client.sendRequest(
		ctx,
		http.MethodGet,
		CalendarEventsEndpoint,
		query.Encode(),
		nil,
		&response,
	)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// EpicEvent wraps an external issue-tracker epic as a calendar event.
// The epic's interval falls back to its single known date when only
// one of start and due is set.
func EpicEvent(epic Epic) (CalendarEvent, bool) {
	if epic.StartDate == nil && epic.DueDate == nil {
		return CalendarEvent{}, false
	}

	start := epic.StartDate
	if start == nil {
		start = epic.DueDate
	}

	end := epic.DueDate
	if end == nil {
		end = epic.StartDate
	}

	endTS := Timestamp{Time: end.Time}

	return CalendarEvent{
		ID:     fmt.Sprintf("epic-%s", epic.Key),
		Type:   EventTypeEpic,
		Title:  epic.Summary,
		Start:  Timestamp{Time: start.Time},
		End:    &endTS,
		AllDay: true,
		URL:    epic.URL,
		Epic:   &epic,
	}, true
}

// TimeOffEvent wraps a time-off request as a calendar event.
func TimeOffEvent(request TimeOffRequest) CalendarEvent {
	endTS := Timestamp{Time: request.EndDate.Time}

	return CalendarEvent{
		ID:             fmt.Sprintf("time_off-%s", request.ID),
		Type:           EventTypeTimeOff,
		Title:          "Time Off",
		Start:          Timestamp{Time: request.StartDate.Time},
		End:            &endTS,
		AllDay:         true,
		TimeOffRequest: &request,
	}
}

// Overlaps reports whether the event's interval intersects
// [windowStart, windowEnd], inclusive on both ends.
func (ev CalendarEvent) Overlaps(windowStart, windowEnd time.Time) bool {
	end := ev.Start.Time
	if ev.End != nil {
		end = ev.End.Time
	}

	return !end.Before(windowStart) && !ev.Start.After(windowEnd)
}
