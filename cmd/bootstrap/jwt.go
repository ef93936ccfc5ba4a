package bootstrap

import (
	"scan-bridge/internal/pkg/config"
	"scan-bridge/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Bridge.TokenDuration <= 0 {
		panic("invalid BRIDGE_TOKEN_DURATION: must be positive")
	}
	return jwt.NewService(cfg.Bridge.TokenSecret, cfg.Bridge.TokenDuration)
}
