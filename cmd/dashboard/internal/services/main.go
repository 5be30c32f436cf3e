package services

import (
	"github.com/xdoubleu/essentia/v2/pkg/config"

	cfg "github.com/dallinbsmith/tava-team-dashboard-sub001/internal/config"
	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type Services struct {
	Auth *AuthService
}

func New(cfg cfg.Config, client tava.Client) *Services {
	return &Services{
		Auth: &AuthService{
			client:           client,
			useSecureCookies: cfg.Env == config.ProdEnv,
			accessExpiry:     cfg.AccessExpiry,
			refreshExpiry:    cfg.RefreshExpiry,
		},
	}
}
