package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/models"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type CalendarService struct {
	logger *slog.Logger
	client tava.Client
}

// Window returns the one-month-padded fetch window around the
// displayed month: first day of the previous month through the last
// day of the next month.
func Window(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month()-1, 1, 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month()+2, 1, 0, 0, 0, 0, date.Location()).
		AddDate(0, 0, -1)

	return start, end
}

// EventsForMonth merges the native calendar events with issue-tracker
// epics and team time off into a single event list for the padded
// window around date.
func (service *CalendarService) EventsForMonth(
	ctx context.Context,
	date time.Time,
	includeTeamTimeOff bool,
) ([]models.Event, bool, error) {
	windowStart, windowEnd := Window(date)
	return service.EventsForWindow(ctx, windowStart, windowEnd, includeTeamTimeOff)
}

// EventsForWindow does the actual merge for [windowStart, windowEnd].
// The primary fetch is fatal on failure; epics and team time off
// degrade to an empty contribution.
func (service *CalendarService) EventsForWindow(
	ctx context.Context,
	windowStart time.Time,
	windowEnd time.Time,
	includeTeamTimeOff bool,
) ([]models.Event, bool, error) {
	client := service.requestClient(ctx)

	response, err := client.GetCalendarEvents(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, false, err
	}

	var epics []tava.Epic
	var teamTimeOff []tava.TimeOffRequest

	// secondary sources are fetched concurrently and fail independently
	var wg sync.WaitGroup

	if response.JiraConnected {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, epicsErr := client.GetEpics(ctx)
			if epicsErr != nil {
				service.logger.Warn(
					"failed to fetch epics",
					logging.ErrAttr(epicsErr),
				)
				return
			}
			epics = result
		}()
	}

	if includeTeamTimeOff {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, timeOffErr := client.GetTimeOff(ctx, tava.TimeOffScopeTeam)
			if timeOffErr != nil {
				service.logger.Warn(
					"failed to fetch team time off",
					logging.ErrAttr(timeOffErr),
				)
				return
			}
			teamTimeOff = result
		}()
	}

	wg.Wait()

	events := make([]tava.CalendarEvent, 0, len(response.Events))
	events = append(events, response.Events...)

	for _, epic := range epics {
		event, ok := tava.EpicEvent(epic)
		if !ok {
			continue
		}

		if !event.Overlaps(windowStart, windowEnd) {
			continue
		}

		events = append(events, event)
	}

	events = append(
		events,
		teamTimeOffEvents(response.Events, teamTimeOff, windowStart, windowEnd)...,
	)

	result := make([]models.Event, 0, len(events))
	for _, event := range events {
		result = append(result, models.NewEvent(event))
	}

	return result, response.JiraConnected, nil
}

// teamTimeOffEvents maps approved team requests into calendar events,
// dropping requests already surfaced among the native events so a
// supervisor's own time off is not counted twice.
func teamTimeOffEvents(
	nativeEvents []tava.CalendarEvent,
	teamTimeOff []tava.TimeOffRequest,
	windowStart time.Time,
	windowEnd time.Time,
) []tava.CalendarEvent {
	nativeRequestIDs := make(map[string]bool)
	for _, event := range nativeEvents {
		if event.TimeOffRequest == nil {
			continue
		}
		nativeRequestIDs[event.TimeOffRequest.ID] = true
	}

	events := []tava.CalendarEvent{}
	for _, request := range teamTimeOff {
		if request.Status != tava.TimeOffApproved {
			continue
		}

		if nativeRequestIDs[request.ID] {
			continue
		}

		event := tava.TimeOffEvent(request)
		if !event.Overlaps(windowStart, windowEnd) {
			continue
		}

		events = append(events, event)
	}

	return events
}
