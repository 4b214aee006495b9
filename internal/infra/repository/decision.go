package repository

import (
	"context"

	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
)

type DecisionWriteQueries interface {
	InsertBookingDecision(ctx context.Context, db dbq.DBTX, arg dbq.BookingDecision) error
}

type DecisionRepository struct {
	queries DecisionWriteQueries
	db      dbq.DBTX
}

func NewDecisionRepository(queries DecisionWriteQueries, db dbq.DBTX) *DecisionRepository {
	return &DecisionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DecisionRepository) Create(ctx context.Context, tx dbq.DBTX, d *decision.Decision) error {
	row, err := converter.DecisionToRow(d)
	if err != nil {
		return infra.WrapRepoErr("failed to encode decision", err, infra.KindDBFailure)
	}

	if err := r.queries.InsertBookingDecision(ctx, tx, row); err != nil {
		return infra.WrapRepoErr("failed to create decision", err)
	}
	return nil
}
