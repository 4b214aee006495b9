package readstore

import (
	"context"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PerformanceViewQueries interface {
	ListPerformanceRecords(ctx context.Context, db dbq.DBTX, arg dbq.ListPerformanceRecordsParams) ([]dbq.PerformanceRecord, error)
}

type PerformanceReadStore struct {
	queries PerformanceViewQueries
	db      dbq.DBTX
}

func NewPerformanceReadStore(queries PerformanceViewQueries, db dbq.DBTX) *PerformanceReadStore {
	return &PerformanceReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *PerformanceReadStore) LoadRange(ctx context.Context, merchantID uuid.UUID, from, to schedule.Date) ([]*performance.Record, error) {
	rows, err := s.queries.ListPerformanceRecords(ctx, s.db, dbq.ListPerformanceRecordsParams{
		MerchantID: merchantID,
		FromDate:   pgconv.DateToPgtype(from),
		ToDate:     pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list performance records", err)
	}

	records := make([]*performance.Record, len(rows))
	for i, row := range rows {
		records[i] = converter.PerformanceFromRow(row)
	}
	return records, nil
}
