package queries

import (
	"context"

	"group-booking-arbiter/internal/domain/policy"

	"github.com/google/uuid"
)

// ConfigSource resolves a merchant's effective config, the default one included.
type ConfigSource interface {
	Config(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, error)
}

type ConfigQueries interface {
	GetBookingConfig(ctx context.Context, merchantID uuid.UUID) (*ConfigView, error)
}

type configQueriesImpl struct {
	source ConfigSource
}

func NewConfigQueries(source ConfigSource) ConfigQueries {
	return &configQueriesImpl{source: source}
}

func (q *configQueriesImpl) GetBookingConfig(ctx context.Context, merchantID uuid.UUID) (*ConfigView, error) {
	cfg, err := q.source.Config(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return NewConfigView(cfg), nil
}
