package timeoff

import (
	"log/slog"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/timeoff/internal/services"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/auth"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/config"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type TimeOff struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
	onChange func(resource string)
}

// New wires the time-off app. onChange is called after a successful
// mutation so the calendar app can push refresh hints to subscribers.
func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	client tava.Client,
	onChange func(resource string),
) *TimeOff {
	if onChange == nil {
		onChange = func(string) {}
	}

	return &TimeOff{
		logger:   logger,
		config:   cfg,
		services: services.New(logger, client, authService),
		onChange: onChange,
	}
}

func (app *TimeOff) GetName() string {
	return "timeoff"
}

func (app *TimeOff) writeJSON(w http.ResponseWriter, status int, data any) {
	err := httptools.WriteJSON(w, status, data, nil)
	if err != nil {
		app.logger.Error("failed to write response", logging.ErrAttr(err))
	}
}
