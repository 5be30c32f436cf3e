package calendar

import (
	"log/slog"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/services"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/auth"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/config"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type Calendar struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	client tava.Client,
) *Calendar {
	return &Calendar{
		logger:   logger,
		config:   cfg,
		services: services.New(logger, cfg, client, authService),
	}
}

func (app *Calendar) GetName() string {
	return "calendar"
}

// NotifyChanged lets other apps push refresh hints onto this app's
// websocket topics after a mutation.
func (app *Calendar) NotifyChanged(resource string) {
	app.services.WebSocket.NotifyChanged(resource)
}

func (app *Calendar) writeJSON(w http.ResponseWriter, status int, data any) {
	err := httptools.WriteJSON(w, status, data, nil)
	if err != nil {
		app.logger.Error("failed to write response", logging.ErrAttr(err))
	}
}
