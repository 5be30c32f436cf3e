package models

import (
	"fmt"
	"time"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

// Event is the aggregated view model handed to the calendar widget:
// one source event plus its resolved display fields. It only lives
// for the duration of a fetch cycle.
type Event struct {
	Source tava.CalendarEvent `json:"event"`
	Title  string             `json:"title"`
	Start  time.Time          `json:"start"`
	End    time.Time          `json:"end"`
}

func NewEvent(source tava.CalendarEvent) Event {
	end := source.Start.Time
	if source.End != nil {
		end = source.End.Time
	}

	title := source.Title
	if source.Type == tava.EventTypeTimeOff &&
		source.TimeOffRequest != nil &&
		source.TimeOffRequest.Requester != nil {
		requester := source.TimeOffRequest.Requester
		title = fmt.Sprintf(
			"%s %s: %s",
			requester.FirstName,
			requester.LastName,
			source.Title,
		)
	}

	return Event{
		Source: source,
		Title:  title,
		Start:  source.Start.Time,
		End:    end,
	}
}
