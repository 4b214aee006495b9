package commands

import (
	"context"
	"log/slog"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/pkg/clock"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"
)

type PerformanceCommands interface {
	RecordBookingPerformance(ctx context.Context, p performance.RecordParams) (*queries.PerformanceView, error)
}

type performanceUseCaseImpl struct {
	uow       shared.UnitOfWork
	baselines *shared.BaselineProvider
	events    shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPerformanceUseCase(uow shared.UnitOfWork, baselines *shared.BaselineProvider, events shared.EventPublisher, clk clock.Clock, logger *slog.Logger) PerformanceCommands {
	return &performanceUseCaseImpl{uow: uow, baselines: baselines, events: events, clock: clk, logger: logger}
}

// RecordBookingPerformance upserts the realized outcome of a slot. A merchant without config is
// not an error: the record is stored and flagged.
func (uc *performanceUseCaseImpl) RecordBookingPerformance(ctx context.Context, p performance.RecordParams) (*queries.PerformanceView, error) {
	now := uc.clock.Now()

	var rec *performance.Record
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Reads().ConfigByMerchant(ctx, p.MerchantID)
		missing := false
		switch {
		case err == nil:
			p.IsHoliday = p.IsHoliday || cfg.IsHoliday(p.Date)
		case infra.IsKind(err, infra.KindNotFound):
			missing = true
		default:
			return err
		}

		r, err := performance.NewRecord(p, now)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if missing {
			r.MarkConfigSnapshotMissing()
		}
		if err := tx.Performance().Upsert(ctx, tx.DB(), r); err != nil {
			return err
		}
		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rec.ConfigSnapshotMissing() {
		uc.logger.WarnContext(ctx, "performance recorded for merchant without booking config",
			"merchant_id", rec.MerchantID(),
			"date", rec.Date().String(),
			"slot", rec.Slot())
	}
	uc.baselines.Invalidate(ctx, rec.MerchantID())

	view := queries.NewPerformanceView(rec)
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	err = uc.events.Publish(pctx, shared.Event{
		Type:       shared.EventPerformanceRecorded,
		MerchantID: rec.MerchantID(),
		SubjectID:  rec.MerchantID().String() + ":" + rec.Date().String() + ":" + rec.Slot().String(),
		OccurredAt: now,
		Payload:    view,
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "event publish failed", "type", shared.EventPerformanceRecorded, "error", err.Error())
	}
	return view, nil
}
