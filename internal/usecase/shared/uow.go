package shared

import (
	"context"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/dbq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	BookingRequests() BookingRequestRepository
	Decisions() DecisionRepository
	Configs() ConfigRepository
	Performance() PerformanceRepository
	Reads() CommandReads
	DB() dbq.DBTX
}

// CommandReads loads aggregates for the write side. Missing rows surface as infra.KindNotFound.
type CommandReads interface {
	BookingRequestByID(ctx context.Context, id uuid.UUID) (*booking.BookingRequest, error)
	ConfigByMerchant(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, error)
	PerformanceInRange(ctx context.Context, merchantID uuid.UUID, from, to schedule.Date) ([]*performance.Record, error)
	OpenRequestsBefore(ctx context.Context, date schedule.Date, limit int) ([]*booking.BookingRequest, error)
}

type BookingRequestRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, r *booking.BookingRequest) error
	// Update persists a transition; it fails with infra.KindConflict when the stored version
	// no longer equals expectedVersion.
	Update(ctx context.Context, tx dbq.DBTX, r *booking.BookingRequest, expectedVersion int) error
}

type DecisionRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, d *decision.Decision) error
}

type ConfigRepository interface {
	Upsert(ctx context.Context, tx dbq.DBTX, c *policy.BookingConfig) error
}

type PerformanceRepository interface {
	Upsert(ctx context.Context, tx dbq.DBTX, r *performance.Record) error
}
