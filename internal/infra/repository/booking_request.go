package repository

//go:generate mockgen -destination=../../../tests/mock/repository/repository.go -package=mock_repository group-booking-arbiter/internal/infra/repository BookingRequestWriteQueries,DecisionWriteQueries,ConfigWriteQueries,PerformanceWriteQueries

import (
	"context"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
)

type BookingRequestWriteQueries interface {
	InsertBookingRequest(ctx context.Context, db dbq.DBTX, arg dbq.BookingRequest) error
	UpdateBookingRequestState(ctx context.Context, db dbq.DBTX, arg dbq.UpdateBookingRequestStateParams) (int64, error)
}

type BookingRequestRepository struct {
	queries BookingRequestWriteQueries
	db      dbq.DBTX
}

func NewBookingRequestRepository(queries BookingRequestWriteQueries, db dbq.DBTX) *BookingRequestRepository {
	return &BookingRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRequestRepository) Create(ctx context.Context, tx dbq.DBTX, req *booking.BookingRequest) error {
	row, err := converter.BookingRequestToRow(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking request", err, infra.KindDBFailure)
	}

	if err := r.queries.InsertBookingRequest(ctx, tx, row); err != nil {
		return infra.WrapRepoErr("failed to create booking request", err)
	}
	return nil
}

// Update writes the request's current state when the stored version still equals expectedVersion.
func (r *BookingRequestRepository) Update(ctx context.Context, tx dbq.DBTX, req *booking.BookingRequest, expectedVersion int) error {
	params, err := converter.BookingRequestToStateParams(req, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking request", err, infra.KindDBFailure)
	}

	affected, err := r.queries.UpdateBookingRequestState(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking request was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}
