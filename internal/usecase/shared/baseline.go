package shared

import (
	"context"
	"log/slog"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"

	"github.com/google/uuid"
)

type BaselineSettings struct {
	TrailingWeeks int
	Defaults      performance.BaselineDefaults
}

// BaselineProvider computes walk-in baselines from recorded performance and caches them per
// merchant until the merchant's history or config changes.
type BaselineProvider struct {
	uow      UnitOfWork
	cache    BaselineCache
	settings BaselineSettings
	logger   *slog.Logger
}

func NewBaselineProvider(uow UnitOfWork, cache BaselineCache, settings BaselineSettings, logger *slog.Logger) *BaselineProvider {
	return &BaselineProvider{uow: uow, cache: cache, settings: settings, logger: logger}
}

func (p *BaselineProvider) Baseline(ctx context.Context, cfg *policy.BookingConfig, date schedule.Date, slot schedule.Slot) (performance.Baseline, error) {
	merchantID := cfg.MerchantID()
	q := performance.BaselineQuery{
		Date:          date,
		Slot:          slot,
		IsHoliday:     cfg.IsHoliday(date),
		TrailingWeeks: p.settings.TrailingWeeks,
	}

	cached, ok, err := p.cache.Get(ctx, merchantID, q)
	switch {
	case err != nil:
		p.logger.WarnContext(ctx, "baseline cache read failed", "merchant_id", merchantID, "error", err.Error())
	case ok:
		return cached, nil
	}

	from, to := q.Window()
	records, err := p.uow.CommandReads().PerformanceInRange(ctx, merchantID, from, to)
	if err != nil {
		return performance.Baseline{}, err
	}
	b := performance.ComputeBaseline(q, records, p.settings.Defaults)

	if err := p.cache.Put(ctx, merchantID, q, b); err != nil {
		p.logger.WarnContext(ctx, "baseline cache write failed", "merchant_id", merchantID, "error", err.Error())
	}
	return b, nil
}

func (p *BaselineProvider) Invalidate(ctx context.Context, merchantID uuid.UUID) {
	if err := p.cache.Invalidate(ctx, merchantID); err != nil {
		p.logger.WarnContext(ctx, "baseline cache invalidation failed", "merchant_id", merchantID, "error", err.Error())
	}
}
