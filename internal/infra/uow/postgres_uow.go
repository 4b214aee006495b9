package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/infra/readstore"
	"group-booking-arbiter/internal/infra/repository"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *dbq.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *dbq.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db dbq.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx dbq.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	requestRepo     shared.BookingRequestRepository
	decisionRepo    shared.DecisionRepository
	configRepo      shared.ConfigRepository
	performanceRepo shared.PerformanceRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() dbq.DBTX {
	return t.dbtx
}

func (t *pgTx) BookingRequests() shared.BookingRequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewBookingRequestRepository(t.uow.q, t.dbtx)
	}
	return t.requestRepo
}

func (t *pgTx) Decisions() shared.DecisionRepository {
	if t.decisionRepo == nil {
		t.decisionRepo = repository.NewDecisionRepository(t.uow.q, t.dbtx)
	}
	return t.decisionRepo
}

func (t *pgTx) Configs() shared.ConfigRepository {
	if t.configRepo == nil {
		t.configRepo = repository.NewConfigRepository(t.uow.q, t.dbtx)
	}
	return t.configRepo
}

func (t *pgTx) Performance() shared.PerformanceRepository {
	if t.performanceRepo == nil {
		t.performanceRepo = repository.NewPerformanceRepository(t.uow.q, t.dbtx)
	}
	return t.performanceRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx dbq.DBTX

	// Lazy-initialized readstores
	requestStore     *readstore.BookingRequestReadStore
	configStore      *readstore.ConfigReadStore
	performanceStore *readstore.PerformanceReadStore
}

func (r *commandReads) requests() *readstore.BookingRequestReadStore {
	if r.requestStore == nil {
		r.requestStore = readstore.NewBookingRequestReadStore(r.uow.q, r.dbtx)
	}
	return r.requestStore
}

func (r *commandReads) BookingRequestByID(ctx context.Context, id uuid.UUID) (*booking.BookingRequest, error) {
	return r.requests().Load(ctx, id)
}

func (r *commandReads) OpenRequestsBefore(ctx context.Context, date schedule.Date, limit int) ([]*booking.BookingRequest, error) {
	return r.requests().LoadOpenBefore(ctx, date, limit)
}

func (r *commandReads) ConfigByMerchant(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, error) {
	if r.configStore == nil {
		r.configStore = readstore.NewConfigReadStore(r.uow.q, r.dbtx)
	}
	return r.configStore.Load(ctx, merchantID)
}

func (r *commandReads) PerformanceInRange(ctx context.Context, merchantID uuid.UUID, from, to schedule.Date) ([]*performance.Record, error) {
	if r.performanceStore == nil {
		r.performanceStore = readstore.NewPerformanceReadStore(r.uow.q, r.dbtx)
	}
	return r.performanceStore.LoadRange(ctx, merchantID, from, to)
}
