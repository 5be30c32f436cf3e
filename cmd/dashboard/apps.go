package main

import (
	"log/slog"
	"net/http"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/timeoff"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/auth"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/config"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type Apps struct {
	apps []App
}

type App interface {
	Routes(prefix string, mux *http.ServeMux)
	GetName() string
}

func NewApps(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	client tava.Client,
) *Apps {
	apps := &Apps{
		apps: []App{},
	}

	calendarApp := calendar.New(authService, logger, cfg, client)

	apps.addApp(calendarApp)
	// time-off mutations surface on the calendar, so its refresh
	// hints go through the calendar app's topics
	apps.addApp(timeoff.New(authService, logger, cfg, client, calendarApp.NotifyChanged))

	return apps
}

func (apps *Apps) Routes(mux *http.ServeMux) {
	for _, app := range apps.apps {
		app.Routes(app.GetName(), mux)
	}
}

func (apps *Apps) addApp(app App) {
	apps.apps = append(apps.apps, app)
}
