// Package ledger keeps seat reservations per merchant slot in Redis. Every mutation of a slot
// runs as an optimistic transaction on that slot's hash, so slots never contend with each other.
package ledger

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	fieldTotal   = "total"
	fieldFloor   = "walkin_floor"
	fieldGroups  = "groups"
	fieldVersion = "version"
	holderPrefix = "holder:"

	// Slots stay readable for a while after service so late releases and audits still find them.
	retentionAfterService = 30 * 24 * time.Hour
)

type Settings struct {
	MaxAttempts int
	BackoffBase time.Duration
}

type RedisLedger struct {
	client   redis.UniversalClient
	settings Settings
	logger   *slog.Logger
}

func NewRedisLedger(client redis.UniversalClient, settings Settings, logger *slog.Logger) shared.CapacityLedger {
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = 5
	}
	if settings.BackoffBase <= 0 {
		settings.BackoffBase = 5 * time.Millisecond
	}
	return &RedisLedger{client: client, settings: settings, logger: logger}
}

func slotKey(key capacity.Key) string {
	return "capacity:" + key.String()
}

type slotState struct {
	exists  bool
	total   int
	floor   int
	groups  int
	version int64
	holders map[string]int
}

func readSlot(ctx context.Context, tx *redis.Tx, k string) (slotState, error) {
	vals, err := tx.HGetAll(ctx, k).Result()
	if err != nil {
		return slotState{}, err
	}
	return parseSlot(vals)
}

func parseSlot(vals map[string]string) (slotState, error) {
	s := slotState{holders: map[string]int{}}
	if len(vals) == 0 {
		return s, nil
	}
	s.exists = true
	for field, raw := range vals {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return slotState{}, errs.Wrap(err, "corrupt capacity field "+field)
		}
		switch {
		case field == fieldTotal:
			s.total = int(n)
		case field == fieldFloor:
			s.floor = int(n)
		case field == fieldGroups:
			s.groups = int(n)
		case field == fieldVersion:
			s.version = n
		case strings.HasPrefix(field, holderPrefix):
			s.holders[strings.TrimPrefix(field, holderPrefix)] = int(n)
		}
	}
	return s, nil
}

func (s slotState) snapshot(key capacity.Key) capacity.Snapshot {
	return capacity.Snapshot{
		Key:                      key,
		TotalCapacity:            s.total,
		ReservedByGroups:         s.groups,
		ReservedByWalkinForecast: s.floor,
		Version:                  s.version,
	}
}

func (l *RedisLedger) Provision(ctx context.Context, key capacity.Key, plan capacity.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	k := slotKey(key)
	expireAt := key.Date.Time().Add(retentionAfterService)

	return l.optimistic(ctx, k, func(tx *redis.Tx) error {
		s, err := readSlot(ctx, tx, k)
		if err != nil {
			return err
		}
		if s.exists && s.total == plan.Total && s.floor == plan.WalkinFloor {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, k,
				fieldTotal, plan.Total,
				fieldFloor, plan.WalkinFloor,
				fieldGroups, s.groups,
				fieldVersion, s.version+1,
			)
			p.ExpireAt(ctx, k, expireAt)
			return nil
		})
		return err
	})
}

func (l *RedisLedger) Reserve(ctx context.Context, key capacity.Key, covers int, holder string) (capacity.Token, error) {
	if covers <= 0 {
		return capacity.Token{}, capacity.ErrInvalidCovers
	}
	k := slotKey(key)
	token := capacity.Token{Key: key, Holder: holder, Covers: covers}

	err := l.optimistic(ctx, k, func(tx *redis.Tx) error {
		s, err := readSlot(ctx, tx, k)
		if err != nil {
			return err
		}
		if !s.exists {
			return capacity.ErrSlotNotProvisioned
		}
		if held, ok := s.holders[holder]; ok {
			token.Covers = held
			return nil
		}
		if !s.snapshot(key).CanAdmit(covers) {
			return capacity.ErrCapacityExceeded
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, k,
				fieldGroups, s.groups+covers,
				fieldVersion, s.version+1,
				holderPrefix+holder, covers,
			)
			return nil
		})
		return err
	})
	if err != nil {
		return capacity.Token{}, err
	}
	return token, nil
}

// Release returns the holder's covers; releasing an unknown holder is a no-op.
func (l *RedisLedger) Release(ctx context.Context, token capacity.Token) error {
	if token.IsZero() {
		return nil
	}
	k := slotKey(token.Key)

	return l.optimistic(ctx, k, func(tx *redis.Tx) error {
		s, err := readSlot(ctx, tx, k)
		if err != nil {
			return err
		}
		held, ok := s.holders[token.Holder]
		if !ok {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.HSet(ctx, k,
				fieldGroups, max(s.groups-held, 0),
				fieldVersion, s.version+1,
			)
			p.HDel(ctx, k, holderPrefix+token.Holder)
			return nil
		})
		return err
	})
}

func (l *RedisLedger) Snapshot(ctx context.Context, key capacity.Key) (capacity.Snapshot, error) {
	vals, err := l.client.HGetAll(ctx, slotKey(key)).Result()
	if err != nil {
		return capacity.Snapshot{}, errs.Wrap(err, "failed to read capacity")
	}
	s, err := parseSlot(vals)
	if err != nil {
		return capacity.Snapshot{}, err
	}
	if !s.exists {
		return capacity.Snapshot{}, capacity.ErrSlotNotProvisioned
	}
	return s.snapshot(key), nil
}

// optimistic runs fn under WATCH on k and retries when another client changed k before EXEC.
func (l *RedisLedger) optimistic(ctx context.Context, k string, fn func(tx *redis.Tx) error) error {
	for attempt := 0; attempt < l.settings.MaxAttempts; attempt++ {
		err := l.client.Watch(ctx, fn, k)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}

		wait := backoff(attempt, l.settings.BackoffBase)
		l.logger.DebugContext(ctx, "capacity ledger contention", "key", k, "attempt", attempt+1, "wait_ms", wait.Milliseconds())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	l.logger.WarnContext(ctx, "capacity ledger retries exhausted", "key", k, "attempts", l.settings.MaxAttempts)
	return capacity.ErrLedgerContention
}

func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(jitter(int64(wait)))
}

func jitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked before conversion
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}
