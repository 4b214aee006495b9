package readstore

//go:generate mockgen -destination=../../../tests/mock/readstore/readstore.go -package=mock_readstore group-booking-arbiter/internal/infra/readstore BookingRequestViewQueries,AnalyticsQueries

import (
	"context"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRequestViewQueries interface {
	GetBookingRequest(ctx context.Context, db dbq.DBTX, id uuid.UUID) (dbq.BookingRequest, error)
	ListBookingRequests(ctx context.Context, db dbq.DBTX, arg dbq.ListBookingRequestsParams) ([]dbq.BookingRequest, error)
	ListExpiredBookingRequests(ctx context.Context, db dbq.DBTX, today pgtype.Date, limit int32) ([]dbq.BookingRequest, error)
	GetLatestBookingDecision(ctx context.Context, db dbq.DBTX, requestID uuid.UUID) (dbq.BookingDecision, error)
}

type BookingRequestReadStore struct {
	queries BookingRequestViewQueries
	db      dbq.DBTX
}

func NewBookingRequestReadStore(queries BookingRequestViewQueries, db dbq.DBTX) *BookingRequestReadStore {
	return &BookingRequestReadStore{
		queries: queries,
		db:      db,
	}
}

// Load returns the aggregate for the write side.
func (s *BookingRequestReadStore) Load(ctx context.Context, id uuid.UUID) (*booking.BookingRequest, error) {
	row, err := s.queries.GetBookingRequest(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request by ID", err)
	}
	return decodeRequest(row)
}

// LoadOpenBefore returns pending or countered requests whose effective date is before date.
func (s *BookingRequestReadStore) LoadOpenBefore(ctx context.Context, date schedule.Date, limit int) ([]*booking.BookingRequest, error) {
	rows, err := s.queries.ListExpiredBookingRequests(ctx, s.db, pgconv.DateToPgtype(date), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired booking requests", err)
	}
	return decodeRequests(rows)
}

func (s *BookingRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingRequestView, error) {
	r, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingRequestView(r), nil
}

func (s *BookingRequestReadStore) List(ctx context.Context, merchantID uuid.UUID, f queries.BookingRequestFilter) ([]*queries.BookingRequestView, error) {
	params := dbq.ListBookingRequestsParams{
		MerchantID: merchantID,
		Limit:      int32(f.Limit),
	}
	if len(f.Statuses) > 0 {
		params.Statuses = make([]string, 0, len(f.Statuses))
		for _, st := range f.Statuses {
			params.Statuses = append(params.Statuses, st.String())
		}
	}
	if f.From != nil {
		params.FromDate = pgconv.DateToPgtype(*f.From)
	}
	if f.To != nil {
		params.ToDate = pgconv.DateToPgtype(*f.To)
	}

	rows, err := s.queries.ListBookingRequests(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}
	requests, err := decodeRequests(rows)
	if err != nil {
		return nil, err
	}

	result := make([]*queries.BookingRequestView, len(requests))
	for i, r := range requests {
		result[i] = queries.NewBookingRequestView(r)
	}
	return result, nil
}

func (s *BookingRequestReadStore) LatestDecision(ctx context.Context, requestID uuid.UUID) (*queries.DecisionView, error) {
	row, err := s.queries.GetLatestBookingDecision(ctx, s.db, requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("decision not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest decision", err)
	}
	d, err := converter.DecisionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode decision", err, infra.KindDBFailure)
	}
	return queries.NewDecisionView(d), nil
}

func decodeRequest(row dbq.BookingRequest) (*booking.BookingRequest, error) {
	r, err := converter.BookingRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking request", err, infra.KindDBFailure)
	}
	return r, nil
}

func decodeRequests(rows []dbq.BookingRequest) ([]*booking.BookingRequest, error) {
	out := make([]*booking.BookingRequest, 0, len(rows))
	for _, row := range rows {
		r, err := decodeRequest(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
