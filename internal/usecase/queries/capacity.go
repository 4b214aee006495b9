package queries

import (
	"context"
	"errors"

	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSlotNotConfigured = errs.New("slot has no configured capacity")

type CapacityQueries interface {
	GetCapacitySnapshot(ctx context.Context, merchantID uuid.UUID, date schedule.Date, slot schedule.Slot) (*CapacityView, error)
}

type capacityQueriesImpl struct {
	ledger    shared.CapacityLedger
	configs   ConfigSource
	baselines *shared.BaselineProvider
}

func NewCapacityQueries(ledger shared.CapacityLedger, configs ConfigSource, baselines *shared.BaselineProvider) CapacityQueries {
	return &capacityQueriesImpl{ledger: ledger, configs: configs, baselines: baselines}
}

// GetCapacitySnapshot reads the ledger without provisioning it. A slot nobody booked yet is
// reported as the plan it would be provisioned with.
func (q *capacityQueriesImpl) GetCapacitySnapshot(ctx context.Context, merchantID uuid.UUID, date schedule.Date, slot schedule.Slot) (*CapacityView, error) {
	key := capacity.NewKey(merchantID, date, slot)
	snap, err := q.ledger.Snapshot(ctx, key)
	if err == nil {
		return NewCapacityView(snap), nil
	}
	if !errors.Is(err, capacity.ErrSlotNotProvisioned) {
		return nil, err
	}

	cfg, err := q.configs.Config(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	total := cfg.CapacityFor(slot)
	if total <= 0 {
		return nil, ErrSlotNotConfigured
	}
	b, err := q.baselines.Baseline(ctx, cfg, date, slot)
	if err != nil {
		return nil, err
	}
	return NewCapacityView(capacity.Snapshot{
		Key:                      key,
		TotalCapacity:            total,
		ReservedByWalkinForecast: min(b.WalkinFloor, total),
	}), nil
}
