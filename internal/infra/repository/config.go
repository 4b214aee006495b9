package repository

import (
	"context"

	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
)

type ConfigWriteQueries interface {
	UpsertBookingConfig(ctx context.Context, db dbq.DBTX, arg dbq.BookingConfig) error
}

type ConfigRepository struct {
	queries ConfigWriteQueries
	db      dbq.DBTX
}

func NewConfigRepository(queries ConfigWriteQueries, db dbq.DBTX) *ConfigRepository {
	return &ConfigRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ConfigRepository) Upsert(ctx context.Context, tx dbq.DBTX, c *policy.BookingConfig) error {
	row, err := converter.ConfigToRow(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking config", err, infra.KindDBFailure)
	}

	if err := r.queries.UpsertBookingConfig(ctx, tx, row); err != nil {
		return infra.WrapRepoErr("failed to upsert booking config", err)
	}
	return nil
}
