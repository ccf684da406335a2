package bootstrap

import (
	"log/slog"

	"dive-booking-gateway/internal/pkg/config"
	"dive-booking-gateway/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, logger *slog.Logger) *jwt.Service {
	svc := jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenDuration)
	if !svc.Enabled() {
		logger.Warn("ADMIN_JWT_SECRET が未設定のため、デバッグ系ルートは認証なしで公開されます")
	}
	return svc
}
