package commands

import (
	"context"
	"log/slog"

	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/pkg/clock"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConfigCommands interface {
	UpdateBookingConfig(ctx context.Context, merchantID uuid.UUID, p policy.Patch) (*queries.ConfigView, error)
}

type configUseCaseImpl struct {
	uow       shared.UnitOfWork
	policies  *shared.PolicyStore
	baselines *shared.BaselineProvider
	clock     clock.Clock
	logger    *slog.Logger
}

func NewConfigUseCase(uow shared.UnitOfWork, policies *shared.PolicyStore, baselines *shared.BaselineProvider, clk clock.Clock, logger *slog.Logger) ConfigCommands {
	return &configUseCaseImpl{uow: uow, policies: policies, baselines: baselines, clock: clk, logger: logger}
}

// UpdateBookingConfig merges the patch over the stored config, or over the default one when the
// merchant has none yet.
func (uc *configUseCaseImpl) UpdateBookingConfig(ctx context.Context, merchantID uuid.UUID, p policy.Patch) (*queries.ConfigView, error) {
	var next *policy.BookingConfig
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ConfigByMerchant(ctx, merchantID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			current = uc.policies.Default(merchantID)
		}

		updated, err := current.Apply(p, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := tx.Configs().Upsert(ctx, tx.DB(), updated); err != nil {
			return err
		}
		next = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.policies.Invalidate(ctx, merchantID)
	uc.baselines.Invalidate(ctx, merchantID)
	uc.logger.InfoContext(ctx, "booking config updated",
		"merchant_id", merchantID,
		"automation_level", next.AutomationLevel())
	return queries.NewConfigView(next), nil
}
