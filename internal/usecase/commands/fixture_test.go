//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/domain/scoring"
	"group-booking-arbiter/internal/infra/cache"
	"group-booking-arbiter/internal/infra/ledger"
	"group-booking-arbiter/internal/pkg/clock"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/shared"
	"group-booking-arbiter/tests/common/builder"
	"group-booking-arbiter/tests/common/uowtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

// lostReplyLedger applies holds on the wrapped ledger and then reports a failed reply, the way a
// dropped connection or a deadline after EXEC looks to the caller. With stall set it first
// waits for the context to end.
type lostReplyLedger struct {
	shared.CapacityLedger
	stall bool
}

func (l lostReplyLedger) Reserve(ctx context.Context, key capacity.Key, covers int, holder string) (capacity.Token, error) {
	if _, err := l.CapacityLedger.Reserve(ctx, key, covers, holder); err != nil {
		return capacity.Token{}, err
	}
	if l.stall {
		<-ctx.Done()
		return capacity.Token{}, ctx.Err()
	}
	return capacity.Token{}, errors.New("read tcp 10.0.0.7:6379: i/o timeout")
}

type fixtureOption func(*fixtureSettings)

type fixtureSettings struct {
	wrapLedger     func(shared.CapacityLedger) shared.CapacityLedger
	processTimeout time.Duration
}

func withLedger(wrap func(shared.CapacityLedger) shared.CapacityLedger) fixtureOption {
	return func(s *fixtureSettings) { s.wrapLedger = wrap }
}

func withProcessTimeout(d time.Duration) fixtureOption {
	return func(s *fixtureSettings) { s.processTimeout = d }
}

// fixture wires the booking use cases over an in-memory store and a miniredis-backed ledger.
type fixture struct {
	store       *uowtest.Store
	ledger      shared.CapacityLedger
	clock       *clock.MockClock
	events      *recordingPublisher
	booking     commands.BookingCommands
	config      commands.ConfigCommands
	performance commands.PerformanceCommands
	baselines   *shared.BaselineProvider
	policies    *shared.PolicyStore
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	settings := fixtureSettings{processTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&settings)
	}

	mr := miniredis.RunT(t)
	mr.SetTime(builder.ReferenceNow)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := uowtest.NewStore()
	clk := clock.NewMockClock(builder.ReferenceNow)
	events := &recordingPublisher{}

	var l shared.CapacityLedger = ledger.NewRedisLedger(client, ledger.Settings{MaxAttempts: 50, BackoffBase: time.Millisecond}, logger)
	if settings.wrapLedger != nil {
		l = settings.wrapLedger(l)
	}
	policies := shared.NewPolicyStore(store, cache.NewRedisConfigCache(client, time.Minute), policy.Defaults{SlotCapacity: 40}, logger)
	baselines := shared.NewBaselineProvider(store, cache.NewRedisBaselineCache(client, time.Minute), shared.BaselineSettings{
		TrailingWeeks: performance.DefaultTrailingWeeks,
		Defaults: performance.BaselineDefaults{
			WalkinSpendPerCover: performance.DefaultWalkinSpendPerCover,
			OccupancyRate:       performance.DefaultOccupancyRate,
		},
	}, logger)
	planner := shared.NewSlotPlanner(l, baselines)
	evaluator := decision.NewEvaluator(scoring.NewEngine(scoring.DefaultThreshold, scoring.DefaultDeadBand), decision.DefaultCostRatio)

	return &fixture{
		store:  store,
		ledger: l,
		clock:  clk,
		events: events,
		booking: commands.NewBookingUseCase(store, l, planner, policies, evaluator, events, clk,
			commands.BookingSettings{ProcessTimeout: settings.processTimeout, ExpiryBatchSize: 50}, logger),
		config:      commands.NewConfigUseCase(store, policies, baselines, clk, logger),
		performance: commands.NewPerformanceUseCase(store, baselines, events, clk, logger),
		baselines:   baselines,
		policies:    policies,
	}
}

// merchant stores a config with 40 seats per slot at the given automation level.
func (f *fixture) merchant(level policy.AutomationLevel, mutate ...func(*builder.ConfigBuilder)) uuid.UUID {
	b := builder.NewConfigBuilder().WithAutomation(level)
	for _, m := range mutate {
		b.With(m)
	}
	cfg := b.BuildDomain()
	f.store.PutConfig(cfg)
	return cfg.MerchantID()
}

func (f *fixture) request(t *testing.T, merchantID uuid.UUID, mutate ...func(*builder.BookingRequestBuilder)) uuid.UUID {
	t.Helper()
	b := builder.NewBookingRequestBuilder().WithMerchantID(merchantID)
	for _, m := range mutate {
		b.With(m)
	}
	view, err := f.booking.CreateBookingRequest(context.Background(), b.Params())
	require.NoError(t, err)
	return view.ID
}

func (f *fixture) stored(t *testing.T, id uuid.UUID) *booking.BookingRequest {
	t.Helper()
	req, ok := f.store.Request(id)
	require.True(t, ok)
	return req
}

func (f *fixture) groupsAt(t *testing.T, merchantID uuid.UUID, slot schedule.Slot) int {
	t.Helper()
	date := schedule.DateOf(builder.ReferenceNow).AddDays(14)
	snap, err := f.ledger.Snapshot(context.Background(), capacity.NewKey(merchantID, date, slot))
	require.NoError(t, err)
	return snap.ReservedByGroups
}
