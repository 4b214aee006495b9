package shared

import (
	"context"
	"log/slog"

	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/infra"

	"github.com/google/uuid"
)

// PolicyStore resolves a merchant's booking config through the cache, falling back to the
// conservative default when none is stored.
type PolicyStore struct {
	uow      UnitOfWork
	cache    ConfigCache
	defaults policy.Defaults
	logger   *slog.Logger
}

func NewPolicyStore(uow UnitOfWork, cache ConfigCache, defaults policy.Defaults, logger *slog.Logger) *PolicyStore {
	return &PolicyStore{uow: uow, cache: cache, defaults: defaults, logger: logger}
}

func (s *PolicyStore) Config(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, error) {
	cached, ok, err := s.cache.Get(ctx, merchantID)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "config cache read failed", "merchant_id", merchantID, "error", err.Error())
	case ok:
		return cached, nil
	}

	cfg, err := s.uow.CommandReads().ConfigByMerchant(ctx, merchantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return s.Default(merchantID), nil
		}
		return nil, err
	}

	if err := s.cache.Put(ctx, cfg); err != nil {
		s.logger.WarnContext(ctx, "config cache write failed", "merchant_id", merchantID, "error", err.Error())
	}
	return cfg, nil
}

func (s *PolicyStore) Default(merchantID uuid.UUID) *policy.BookingConfig {
	return policy.DefaultConfig(merchantID, s.defaults)
}

func (s *PolicyStore) Invalidate(ctx context.Context, merchantID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, merchantID); err != nil {
		s.logger.WarnContext(ctx, "config cache invalidation failed", "merchant_id", merchantID, "error", err.Error())
	}
}
