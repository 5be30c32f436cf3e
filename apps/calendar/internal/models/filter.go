package models

import (
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

//nolint:gochecknoglobals //fixed set of toggleable types
var FilterableTypes = []tava.EventType{
	tava.EventTypeTask,
	tava.EventTypeMeeting,
	tava.EventTypeTimeOff,
	tava.EventTypeJira,
	tava.EventTypeEpic,
}

// TypeFilter is the set of event types currently shown. Jira and epic
// toggle separately even though both render as epic-sourced data.
type TypeFilter map[tava.EventType]bool

func NewTypeFilter() TypeFilter {
	filter := make(TypeFilter, len(FilterableTypes))
	for _, eventType := range FilterableTypes {
		filter[eventType] = true
	}
	return filter
}

// NewTypeFilterFrom enables only the given types.
func NewTypeFilterFrom(types []tava.EventType) TypeFilter {
	filter := make(TypeFilter, len(types))
	for _, eventType := range types {
		filter[eventType] = true
	}
	return filter
}

func (filter TypeFilter) Toggle(eventType tava.EventType) {
	filter[eventType] = !filter[eventType]
}

func (filter TypeFilter) Enabled(eventType tava.EventType) bool {
	return filter[eventType]
}

// Apply returns the events whose type is enabled. The input slice is
// left untouched so toggling back on restores hidden events.
func (filter TypeFilter) Apply(events []Event) []Event {
	result := make([]Event, 0, len(events))
	for _, event := range events {
		if !filter.Enabled(event.Source.Type) {
			continue
		}
		result = append(result, event)
	}
	return result
}
