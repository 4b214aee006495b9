//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/cache"
	"group-booking-arbiter/internal/infra/ledger"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"
	"group-booking-arbiter/tests/common/builder"
	"group-booking-arbiter/tests/common/uowtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticConfig struct{ cfg *policy.BookingConfig }

func (s staticConfig) Config(context.Context, uuid.UUID) (*policy.BookingConfig, error) {
	return s.cfg, nil
}

func TestCapacityQueries_GetCapacitySnapshot(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	mr.SetTime(builder.ReferenceNow)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := uowtest.NewStore()
	l := ledger.NewRedisLedger(client, ledger.Settings{}, logger)
	baselines := shared.NewBaselineProvider(store, cache.NewRedisBaselineCache(client, time.Minute), shared.BaselineSettings{
		Defaults: performance.BaselineDefaults{WalkinSpendPerCover: 25, OccupancyRate: 0.5},
	}, logger)
	cfg := builder.NewConfigBuilder().With(func(b *builder.ConfigBuilder) {
		b.SlotCapacity = map[schedule.Slot]int{schedule.SlotLunch: 30, schedule.SlotDinner: 40}
	}).BuildDomain()
	q := queries.NewCapacityQueries(l, staticConfig{cfg}, baselines)
	day := schedule.DateOf(builder.ReferenceNow).AddDays(14)

	t.Run("unprovisioned slot reports its plan", func(t *testing.T) {
		v, err := q.GetCapacitySnapshot(ctx, cfg.MerchantID(), day, schedule.SlotLunch)
		require.NoError(t, err)
		assert.Equal(t, 30, v.TotalCapacity)
		assert.Equal(t, 30, v.Free)
		assert.Zero(t, v.Version)

		_, err = l.Snapshot(ctx, capacity.NewKey(cfg.MerchantID(), day, schedule.SlotLunch))
		assert.ErrorIs(t, err, capacity.ErrSlotNotProvisioned)
	})

	t.Run("provisioned slot reports the ledger", func(t *testing.T) {
		key := capacity.NewKey(cfg.MerchantID(), day, schedule.SlotDinner)
		require.NoError(t, l.Provision(ctx, key, capacity.Plan{Total: 40, WalkinFloor: 10}))
		_, err := l.Reserve(ctx, key, 12, "req-1")
		require.NoError(t, err)

		v, err := q.GetCapacitySnapshot(ctx, cfg.MerchantID(), day, schedule.SlotDinner)
		require.NoError(t, err)
		assert.Equal(t, 12, v.ReservedByGroups)
		assert.Equal(t, 10, v.ReservedByWalkinForecast)
		assert.Equal(t, 18, v.Free)
	})

	t.Run("slot without capacity", func(t *testing.T) {
		_, err := q.GetCapacitySnapshot(ctx, cfg.MerchantID(), day, schedule.SlotBreakfast)
		assert.True(t, errs.IsAny(err, queries.ErrSlotNotConfigured))
	})
}
