package components

import (
	"group-booking-arbiter/internal/handler"
	"group-booking-arbiter/internal/handler/api"
	"group-booking-arbiter/internal/handler/middleware"
	"group-booking-arbiter/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewConfigHandler,
		api.NewPerformanceHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.MerchantRateLimiter {
	return middleware.NewMerchantRateLimiter(cfg.RateLimit)
}
