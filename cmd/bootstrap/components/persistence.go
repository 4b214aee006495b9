package components

import (
	"log/slog"

	"group-booking-arbiter/internal/infra/cache"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/infra/ledger"
	"group-booking-arbiter/internal/infra/readstore"
	"group-booking-arbiter/internal/infra/uow"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	redisStoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// BookingRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingRequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingRequestReadStore,
			fx.As(new(queries.BookingRequestReadStore)),
		),
		// Analytics
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AnalyticsQueries)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var redisStoreModule = fx.Module("persistence/redis",
	fx.Provide(
		NewCapacityLedger,
		NewConfigCache,
		NewBaselineCache,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *dbq.Queries {
	return dbq.New()
}

func NewDBTX(pool *pgxpool.Pool) dbq.DBTX {
	return pool
}

func NewCapacityLedger(client redis.UniversalClient, cfg config.Config, logger *slog.Logger) shared.CapacityLedger {
	return ledger.NewRedisLedger(client, ledger.Settings{
		MaxAttempts: cfg.Arbiter.LedgerMaxAttempts,
		BackoffBase: cfg.Arbiter.LedgerBackoffBase,
	}, logger)
}

func NewConfigCache(client redis.UniversalClient, cfg config.Config) shared.ConfigCache {
	return cache.NewRedisConfigCache(client, cfg.Arbiter.CacheTTL)
}

func NewBaselineCache(client redis.UniversalClient, cfg config.Config) shared.BaselineCache {
	return cache.NewRedisBaselineCache(client, cfg.Arbiter.CacheTTL)
}
