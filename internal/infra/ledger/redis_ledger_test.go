//go:build unit

package ledger_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/ledger"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisLedgerTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	ledger shared.CapacityLedger
	key    capacity.Key
	ctx    context.Context
}

func (s *RedisLedgerTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.ledger = ledger.NewRedisLedger(s.client, ledger.Settings{MaxAttempts: 50, BackoffBase: time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.key = capacity.NewKey(uuid.New(), schedule.DateOf(time.Now()).AddDays(14), schedule.SlotDinner)
	s.ctx = context.Background()
}

func (s *RedisLedgerTestSuite) TearDownTest() {
	s.client.Close()
}

func (s *RedisLedgerTestSuite) provision(total, floor int) {
	s.Require().NoError(s.ledger.Provision(s.ctx, s.key, capacity.Plan{Total: total, WalkinFloor: floor}))
}

func (s *RedisLedgerTestSuite) TestProvision() {
	s.Run("new slot starts without group reservations", func() {
		s.provision(40, 10)

		snap, err := s.ledger.Snapshot(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(40, snap.TotalCapacity)
		s.Equal(10, snap.ReservedByWalkinForecast)
		s.Equal(0, snap.ReservedByGroups)
		s.Equal(int64(1), snap.Version)
		s.Equal(30, snap.Free())
	})

	s.Run("unchanged plan leaves version untouched", func() {
		s.provision(40, 10)

		snap, err := s.ledger.Snapshot(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(int64(1), snap.Version)
	})

	s.Run("changed plan keeps existing reservations", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 12, "req-1")
		s.Require().NoError(err)

		s.provision(50, 8)

		snap, err := s.ledger.Snapshot(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(50, snap.TotalCapacity)
		s.Equal(8, snap.ReservedByWalkinForecast)
		s.Equal(12, snap.ReservedByGroups)
	})

	s.Run("invalid plan", func() {
		err := s.ledger.Provision(s.ctx, s.key, capacity.Plan{Total: 0})
		s.ErrorIs(err, capacity.ErrInvalidPlan)
	})

	s.Run("slot expires after the retention window", func() {
		ttl := s.mr.TTL("capacity:" + s.key.String())
		s.Greater(ttl, 14*24*time.Hour)
	})
}

func (s *RedisLedgerTestSuite) TestReserve() {
	s.provision(40, 10)

	token, err := s.ledger.Reserve(s.ctx, s.key, 20, "req-1")
	s.Require().NoError(err)
	s.Equal(capacity.Token{Key: s.key, Holder: "req-1", Covers: 20}, token)

	s.Run("same holder is idempotent", func() {
		again, err := s.ledger.Reserve(s.ctx, s.key, 20, "req-1")
		s.Require().NoError(err)
		s.Equal(token, again)

		snap, err := s.ledger.Snapshot(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(20, snap.ReservedByGroups)
	})

	s.Run("exceeding the walk-in floor is rejected", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 11, "req-2")
		s.ErrorIs(err, capacity.ErrCapacityExceeded)
	})

	s.Run("exactly filling the slot is admitted", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 10, "req-3")
		s.NoError(err)

		snap, err := s.ledger.Snapshot(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(0, snap.Free())
	})

	s.Run("non-positive covers", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 0, "req-4")
		s.ErrorIs(err, capacity.ErrInvalidCovers)
	})

	s.Run("unprovisioned slot", func() {
		other := capacity.NewKey(s.key.MerchantID, s.key.Date, schedule.SlotLunch)
		_, err := s.ledger.Reserve(s.ctx, other, 2, "req-5")
		s.ErrorIs(err, capacity.ErrSlotNotProvisioned)
	})
}

func (s *RedisLedgerTestSuite) TestRelease() {
	s.provision(30, 0)

	token, err := s.ledger.Reserve(s.ctx, s.key, 30, "req-1")
	s.Require().NoError(err)

	s.Require().NoError(s.ledger.Release(s.ctx, token))

	snap, err := s.ledger.Snapshot(s.ctx, s.key)
	s.Require().NoError(err)
	s.Equal(0, snap.ReservedByGroups)

	s.Run("released seats can be taken again", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 30, "req-2")
		s.NoError(err)
	})

	s.Run("releasing twice is a no-op", func() {
		s.NoError(s.ledger.Release(s.ctx, token))

		snap, err := s.ledger.Snapshot(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(30, snap.ReservedByGroups)
	})

	s.Run("zero token is a no-op", func() {
		s.NoError(s.ledger.Release(s.ctx, capacity.Token{}))
	})
}

func (s *RedisLedgerTestSuite) TestSnapshot_NotProvisioned() {
	_, err := s.ledger.Snapshot(s.ctx, s.key)
	s.ErrorIs(err, capacity.ErrSlotNotProvisioned)
}

func TestRedisLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLedgerTestSuite))
}

func TestRedisLedger_ConcurrentReservesNeverOversell(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	l := ledger.NewRedisLedger(client, ledger.Settings{MaxAttempts: 200, BackoffBase: time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	key := capacity.NewKey(uuid.New(), schedule.DateOf(time.Now()).AddDays(7), schedule.SlotLunch)
	require.NoError(t, l.Provision(ctx, key, capacity.Plan{Total: 60, WalkinFloor: 12}))

	const workers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := l.Reserve(ctx, key, 4, "req-"+strconv.Itoa(i))
			if err != nil {
				assert.True(t, isExpectedRejection(err), "unexpected error: %v", err)
				return
			}
			mu.Lock()
			admitted += token.Covers
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	snap, err := l.Snapshot(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, admitted, snap.ReservedByGroups)
	assert.LessOrEqual(t, snap.ReservedByGroups+snap.ReservedByWalkinForecast, snap.TotalCapacity)
	assert.Positive(t, admitted)
}

func isExpectedRejection(err error) bool {
	return errors.Is(err, capacity.ErrCapacityExceeded) || errors.Is(err, capacity.ErrLedgerContention)
}
