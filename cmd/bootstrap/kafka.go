package bootstrap

import (
	"context"
	"log/slog"

	"group-booking-arbiter/internal/infra/messaging"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/usecase/shared"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to dropping events when no brokers are configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("kafka brokers not configured, domain events will be dropped")
		return messaging.NewNopPublisher(logger)
	}

	publisher := messaging.NewKafkaPublisher(messaging.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("kafka publisher ready", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher
}
