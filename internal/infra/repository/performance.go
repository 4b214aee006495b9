package repository

import (
	"context"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
)

type PerformanceWriteQueries interface {
	UpsertPerformanceRecord(ctx context.Context, db dbq.DBTX, arg dbq.PerformanceRecord) error
}

type PerformanceRepository struct {
	queries PerformanceWriteQueries
	db      dbq.DBTX
}

func NewPerformanceRepository(queries PerformanceWriteQueries, db dbq.DBTX) *PerformanceRepository {
	return &PerformanceRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert replaces the record of the same merchant, date and slot.
func (r *PerformanceRepository) Upsert(ctx context.Context, tx dbq.DBTX, rec *performance.Record) error {
	if err := r.queries.UpsertPerformanceRecord(ctx, tx, converter.PerformanceToRow(rec)); err != nil {
		return infra.WrapRepoErr("failed to upsert performance record", err)
	}
	return nil
}
