package readstore

import (
	"context"

	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/converter"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ConfigViewQueries interface {
	GetBookingConfig(ctx context.Context, db dbq.DBTX, merchantID uuid.UUID) (dbq.BookingConfig, error)
}

type ConfigReadStore struct {
	queries ConfigViewQueries
	db      dbq.DBTX
}

func NewConfigReadStore(queries ConfigViewQueries, db dbq.DBTX) *ConfigReadStore {
	return &ConfigReadStore{
		queries: queries,
		db:      db,
	}
}

// Load returns the stored config; a merchant without one yields infra.KindNotFound.
func (s *ConfigReadStore) Load(ctx context.Context, merchantID uuid.UUID) (*policy.BookingConfig, error) {
	row, err := s.queries.GetBookingConfig(ctx, s.db, merchantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking config not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking config", err)
	}
	cfg, err := converter.ConfigFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking config", err, infra.KindDBFailure)
	}
	return cfg, nil
}
