package services

import (
	"log/slog"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/internal/auth"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type Services struct {
	Auth    auth.Service
	TimeOff *TimeOffService
}

func New(
	logger *slog.Logger,
	client tava.Client,
	authService auth.Service,
) *Services {
	return &Services{
		Auth: authService,
		TimeOff: &TimeOffService{
			logger: logger,
			client: client,
		},
	}
}
