package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=mock_queries group-booking-arbiter/internal/usecase/queries BookingQueries,ConfigQueries,AnalyticsQueries,CapacityQueries,BookingRequestReadStore,AnalyticsReadStore

import (
	"context"

	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var (
	ErrBookingRequestNotFound = errs.New("booking request not found")
	ErrInvalidFilter          = errs.New("invalid filter")
)

type BookingRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	List(ctx context.Context, merchantID uuid.UUID, f BookingRequestFilter) ([]*BookingRequestView, error)
	LatestDecision(ctx context.Context, requestID uuid.UUID) (*DecisionView, error)
}

type BookingQueries interface {
	GetBookingRequest(ctx context.Context, merchantID, id uuid.UUID) (*BookingRequestView, error)
	ListBookingRequests(ctx context.Context, merchantID uuid.UUID, f BookingRequestFilter) ([]*BookingRequestView, error)
}

type bookingQueriesImpl struct {
	store BookingRequestReadStore
}

func NewBookingQueries(store BookingRequestReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// GetBookingRequest hides requests of other merchants behind the not-found error.
func (q *bookingQueriesImpl) GetBookingRequest(ctx context.Context, merchantID, id uuid.UUID) (*BookingRequestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingRequestNotFound
		}
		return nil, err
	}
	if v.MerchantID != merchantID {
		return nil, ErrBookingRequestNotFound
	}

	latest, err := q.store.LatestDecision(ctx, id)
	switch {
	case err == nil:
		v.LatestDecision = latest
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListBookingRequests(ctx context.Context, merchantID uuid.UUID, f BookingRequestFilter) ([]*BookingRequestView, error) {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, errs.Mark(errs.New("from must not be after to"), ErrInvalidFilter)
	}
	f.Limit = ValidateLimit(f.Limit)
	return q.store.List(ctx, merchantID, f)
}
