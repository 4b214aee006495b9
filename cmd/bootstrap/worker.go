package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartExpiryWorker,
	),
)

// StartExpiryWorker sweeps overdue requests on a fixed interval until the app stops.
func StartExpiryWorker(lc fx.Lifecycle, cfg config.Config, cmds commands.BookingCommands, logger *slog.Logger) {
	interval := cfg.Arbiter.ExpiryInterval
	if interval <= 0 {
		logger.Info("expiry worker disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				runExpiry(ctx, interval, cmds, logger)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}

func runExpiry(ctx context.Context, interval time.Duration, cmds commands.BookingCommands, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			expired, err := cmds.ExpireOverdue(ctx)
			if err != nil {
				logger.Error("expiry sweep failed", "expired", expired, "error", err.Error())
				continue
			}
			if expired > 0 {
				logger.Info("expired overdue booking requests", "count", expired)
			}
		}
	}
}
