package bootstrap

import (
	"log/slog"

	"group-booking-arbiter/internal/handler/middleware"
	"group-booking-arbiter/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}
