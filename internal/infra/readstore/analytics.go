package readstore

import (
	"context"

	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnalyticsQueries interface {
	ListBookingRequestsInRange(ctx context.Context, db dbq.DBTX, arg dbq.ListBookingRequestsInRangeParams) ([]dbq.BookingRequest, error)
	ListBookingDecisionsInRange(ctx context.Context, db dbq.DBTX, arg dbq.ListBookingDecisionsInRangeParams) ([]dbq.BookingDecision, error)
	ListPerformanceRecords(ctx context.Context, db dbq.DBTX, arg dbq.ListPerformanceRecordsParams) ([]dbq.PerformanceRecord, error)
}

type AnalyticsReadStore struct {
	queries AnalyticsQueries
}

func NewAnalyticsReadStore(queries AnalyticsQueries) *AnalyticsReadStore {
	return &AnalyticsReadStore{queries: queries}
}

// Load reads requests, decisions and performance of the period through one db handle so a
// read-only transaction yields a consistent snapshot.
func (s *AnalyticsReadStore) Load(ctx context.Context, db dbq.DBTX, merchantID uuid.UUID, from, to schedule.Date) (*queries.AnalyticsInputs, error) {
	pgFrom, pgTo := pgconv.DateToPgtype(from), pgconv.DateToPgtype(to)

	requestRows, err := s.queries.ListBookingRequestsInRange(ctx, db, dbq.ListBookingRequestsInRangeParams{
		MerchantID: merchantID,
		FromDate:   pgFrom,
		ToDate:     pgTo,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests for analytics", err)
	}
	requests, err := decodeRequests(requestRows)
	if err != nil {
		return nil, err
	}

	decisionRows, err := s.queries.ListBookingDecisionsInRange(ctx, db, dbq.ListBookingDecisionsInRangeParams{
		MerchantID: merchantID,
		FromDate:   pgFrom,
		ToDate:     pgTo,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list decisions for analytics", err)
	}
	decisions := make([]*decision.Decision, 0, len(decisionRows))
	for _, row := range decisionRows {
		d, err := converter.DecisionFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode decision", err, infra.KindDBFailure)
		}
		decisions = append(decisions, d)
	}

	perfRows, err := s.queries.ListPerformanceRecords(ctx, db, dbq.ListPerformanceRecordsParams{
		MerchantID: merchantID,
		FromDate:   pgFrom,
		ToDate:     pgTo,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list performance records for analytics", err)
	}
	records := make([]*performance.Record, len(perfRows))
	for i, row := range perfRows {
		records[i] = converter.PerformanceFromRow(row)
	}

	return &queries.AnalyticsInputs{
		Requests:    requests,
		Decisions:   decisions,
		Performance: records,
	}, nil
}
