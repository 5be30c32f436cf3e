package services

import (
	"log/slog"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/auth"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/config"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type Services struct {
	Auth      auth.Service
	Calendar  *CalendarService
	WebSocket *WebSocketService
}

func New(
	logger *slog.Logger,
	config config.Config,
	client tava.Client,
	authService auth.Service,
) *Services {
	calendar := &CalendarService{
		logger: logger,
		client: client,
	}

	webSocket := NewWebSocketService(logger, []string{config.WebURL})
	webSocket.RegisterTopics([]string{CalendarTopic, TimeOffTopic})

	return &Services{
		Auth:      authService,
		Calendar:  calendar,
		WebSocket: webSocket,
	}
}
