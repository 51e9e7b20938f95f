package bootstrap

import (
	"time"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/token"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		NewTokenService,
	),
)

func NewTokenService(cfg config.Config) *token.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return token.NewService(cfg.JWT.Secret, duration)
}
