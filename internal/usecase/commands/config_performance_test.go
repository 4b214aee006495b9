//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/pkg/ptr"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/shared"
	"group-booking-arbiter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBookingConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("first update starts from the defaults", func(t *testing.T) {
		f := newFixture(t)
		merchantID := uuid.New()

		before, err := f.policies.Config(ctx, merchantID)
		require.NoError(t, err)
		require.True(t, before.IsDefault())

		view, err := f.config.UpdateBookingConfig(ctx, merchantID, policy.Patch{
			AutomationLevel: ptr.Of(policy.AutomationFullAuto),
			SlotCapacity:    map[schedule.Slot]int{schedule.SlotLunch: 60},
		})
		require.NoError(t, err)

		assert.Equal(t, "full_auto", view.AutomationLevel)
		assert.False(t, view.IsDefault)
		assert.Equal(t, 60, view.SlotCapacity["lunch"])
		assert.Equal(t, 40, view.SlotCapacity["dinner"])
		assert.InDelta(t, policy.DefaultMinMarginPercent, view.MinMarginPercent, 1e-9)

		stored, ok := f.store.Config(merchantID)
		require.True(t, ok)
		assert.Equal(t, policy.AutomationFullAuto, stored.AutomationLevel())

		after, err := f.policies.Config(ctx, merchantID)
		require.NoError(t, err)
		assert.Equal(t, policy.AutomationFullAuto, after.AutomationLevel())
	})

	t.Run("later updates merge over the stored config", func(t *testing.T) {
		f := newFixture(t)
		merchantID := f.merchant(policy.AutomationSemiAuto, func(b *builder.ConfigBuilder) {
			b.PreferredPartners = []string{"tour-7"}
		})

		view, err := f.config.UpdateBookingConfig(ctx, merchantID, policy.Patch{MinMarginPercent: ptr.Of(35.0)})
		require.NoError(t, err)

		assert.Equal(t, "semi_auto", view.AutomationLevel)
		assert.Equal(t, []string{"tour-7"}, view.PreferredPartners)
		assert.InDelta(t, 35, view.MinMarginPercent, 1e-9)
	})

	t.Run("invalid patch", func(t *testing.T) {
		f := newFixture(t)
		merchantID := f.merchant(policy.AutomationSemiAuto)

		_, err := f.config.UpdateBookingConfig(ctx, merchantID, policy.Patch{WeightRevenue: ptr.Of(-1.0)})
		assert.True(t, errs.IsAny(err, commands.ErrValidation))
		assert.ErrorIs(t, err, policy.ErrNegativeWeight)

		stored, ok := f.store.Config(merchantID)
		require.True(t, ok)
		assert.InDelta(t, policy.DefaultWeightRevenue, stored.Weights().Revenue, 1e-9)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailWrites = errors.New("connection reset")

		_, err := f.config.UpdateBookingConfig(ctx, uuid.New(), policy.Patch{MinMarginPercent: ptr.Of(30.0)})
		assert.Error(t, err)
	})
}

func TestRecordBookingPerformance(t *testing.T) {
	ctx := context.Background()

	t.Run("derives metrics and refreshes the baseline", func(t *testing.T) {
		f := newFixture(t)
		merchantID := f.merchant(policy.AutomationSemiAuto)
		cfg, ok := f.store.Config(merchantID)
		require.True(t, ok)
		target := schedule.DateOf(builder.ReferenceNow).AddDays(14)

		before, err := f.baselines.Baseline(ctx, cfg, target, schedule.SlotDinner)
		require.NoError(t, err)
		assert.Zero(t, before.SampleSize)

		params := builder.NewPerformanceBuilder().With(func(b *builder.PerformanceBuilder) {
			b.MerchantID = merchantID
		}).Params()
		view, err := f.performance.RecordBookingPerformance(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, 30, view.TotalCovers)
		assert.InDelta(t, 75, view.OccupancyPercent, 1e-9)
		assert.InDelta(t, 40, view.AvgGroupSpend, 1e-9)
		assert.InDelta(t, 25, view.AvgWalkinSpend, 1e-9)
		assert.False(t, view.ConfigSnapshotMissing)
		assert.Contains(t, f.events.Types(), shared.EventPerformanceRecorded)

		after, err := f.baselines.Baseline(ctx, cfg, target, schedule.SlotDinner)
		require.NoError(t, err)
		assert.Equal(t, 1, after.SampleSize)
		assert.Equal(t, 20, after.WalkinFloor)
		assert.InDelta(t, 25, after.WalkinSpendPerCover, 1e-9)
	})

	t.Run("merchant without config is flagged", func(t *testing.T) {
		f := newFixture(t)
		params := builder.NewPerformanceBuilder().Params()

		view, err := f.performance.RecordBookingPerformance(ctx, params)
		require.NoError(t, err)
		assert.True(t, view.ConfigSnapshotMissing)

		rec, ok := f.store.Record(params.MerchantID, params.Date, params.Slot)
		require.True(t, ok)
		assert.True(t, rec.ConfigSnapshotMissing())
	})

	t.Run("configured holiday marks the record", func(t *testing.T) {
		f := newFixture(t)
		day := schedule.DateOf(builder.ReferenceNow).AddDays(-7)
		merchantID := f.merchant(policy.AutomationSemiAuto, func(b *builder.ConfigBuilder) {
			b.HolidayDates = []schedule.Date{day}
		})

		view, err := f.performance.RecordBookingPerformance(ctx, builder.NewPerformanceBuilder().With(func(b *builder.PerformanceBuilder) {
			b.MerchantID = merchantID
			b.Date = day
		}).Params())
		require.NoError(t, err)
		assert.True(t, view.IsHoliday)
	})

	t.Run("same slot is replaced", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPerformanceBuilder()
		_, err := f.performance.RecordBookingPerformance(ctx, b.Params())
		require.NoError(t, err)

		b.WalkinCovers = 25
		_, err = f.performance.RecordBookingPerformance(ctx, b.Params())
		require.NoError(t, err)

		rec, ok := f.store.Record(b.MerchantID, b.Date, b.Slot)
		require.True(t, ok)
		assert.Equal(t, 25, rec.WalkinCovers())
	})

	t.Run("invalid record", func(t *testing.T) {
		f := newFixture(t)
		params := builder.NewPerformanceBuilder().With(func(b *builder.PerformanceBuilder) {
			b.TotalCapacity = 0
		}).Params()

		_, err := f.performance.RecordBookingPerformance(ctx, params)
		assert.True(t, errs.IsAny(err, commands.ErrValidation))
		assert.ErrorIs(t, err, performance.ErrInvalidCapacity)
	})
}
