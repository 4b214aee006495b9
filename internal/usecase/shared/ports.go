package shared

import (
	"context"
	"time"

	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"

	"github.com/google/uuid"
)

// CapacityLedger holds seats per (merchant, date, slot). Operations on one key are atomic;
// different keys never contend.
type CapacityLedger interface {
	// Provision records the seat plan of a key, leaving it untouched when unchanged.
	Provision(ctx context.Context, key capacity.Key, plan capacity.Plan) error
	// Reserve is idempotent per holder and fails with capacity.ErrCapacityExceeded or
	// capacity.ErrLedgerContention.
	Reserve(ctx context.Context, key capacity.Key, covers int, holder string) (capacity.Token, error)
	Release(ctx context.Context, token capacity.Token) error
	Snapshot(ctx context.Context, key capacity.Key) (capacity.Snapshot, error)
}

type BaselineCache interface {
	Get(ctx context.Context, merchantID uuid.UUID, q performance.BaselineQuery) (performance.Baseline, bool, error)
	Put(ctx context.Context, merchantID uuid.UUID, q performance.BaselineQuery, b performance.Baseline) error
	// Invalidate drops every cached baseline of the merchant.
	Invalidate(ctx context.Context, merchantID uuid.UUID) error
}

type ConfigCache interface {
	Get(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, bool, error)
	Put(ctx context.Context, cfg *policy.BookingConfig) error
	Invalidate(ctx context.Context, merchantID uuid.UUID) error
}

const (
	EventBookingDecided       = "booking.decided"
	EventBookingStatusChanged = "booking.status_changed"
	EventPerformanceRecorded  = "performance.recorded"
)

type Event struct {
	Type       string    `json:"type"`
	MerchantID uuid.UUID `json:"merchant_id"`
	// SubjectID keys the message so events of one request stay ordered.
	SubjectID  string    `json:"subject_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
