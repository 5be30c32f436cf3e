package calendar

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/models"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/constants"
	authmodels "github.com/dallinbsmith/tava-team-dashboard-sub001/internal/models"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type eventsResponseDto struct {
	Events        []models.Event `json:"events"`
	JiraConnected bool           `json:"jira_connected"`
}

func (app *Calendar) eventsHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[authmodels.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	// the team time-off toggle only exists for supervisors and admins
	includeTeamTimeOff := r.URL.Query().Get("team_time_off") == "true" &&
		user.CanViewTeam()

	events, jiraConnected, err := app.services.Calendar.EventsForMonth(
		r.Context(),
		date,
		includeTeamTimeOff,
	)
	if err != nil {
		app.logger.Error("failed to load calendar events", logging.ErrAttr(err))
		http.Error(w, "Failed to load calendar events", http.StatusBadGateway)
		return
	}

	if raw := r.URL.Query().Get("types"); raw != "" {
		types, err := parseEventTypes(raw)
		if err != nil {
			http.Error(w, "Invalid event type", http.StatusBadRequest)
			return
		}

		filter := models.NewTypeFilterFrom(types)
		events = filter.Apply(events)
	}

	app.writeJSON(w, http.StatusOK, eventsResponseDto{
		Events:        events,
		JiraConnected: jiraConnected,
	})
}

func parseEventTypes(raw string) ([]tava.EventType, error) {
	types := []tava.EventType{}
	for _, part := range strings.Split(raw, ",") {
		eventType := tava.EventType(strings.TrimSpace(part))
		if !slices.Contains(models.FilterableTypes, eventType) {
			return nil, fmt.Errorf("unknown event type: %s", eventType)
		}
		types = append(types, eventType)
	}
	return types, nil
}
