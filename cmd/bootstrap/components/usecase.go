package components

import (
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/scoring"
	"group-booking-arbiter/internal/pkg/clock"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/usecase"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSharedModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewScoringEngine,
		fx.As(new(scoring.Scorer)),
	),
	NewEvaluator,
	NewPolicyDefaults,
	NewBaselineSettings,
	NewBookingSettings,
)

var usecaseSharedModule = fx.Module("usecase/shared",
	fx.Provide(
		fx.Annotate(
			shared.NewPolicyStore,
			fx.As(fx.Self()),
			fx.As(new(queries.ConfigSource)),
		),
		shared.NewBaselineProvider,
		shared.NewSlotPlanner,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewConfigUseCase,
		commands.NewPerformanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewConfigQueries,
		queries.NewAnalyticsQueries,
		queries.NewCapacityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewScoringEngine(cfg config.Config) *scoring.Engine {
	return scoring.NewEngine(cfg.Arbiter.AcceptThreshold, cfg.Arbiter.DeadBand)
}

func NewEvaluator(scorer scoring.Scorer, cfg config.Config) *decision.Evaluator {
	return decision.NewEvaluator(scorer, cfg.Arbiter.DefaultCostRatio)
}

func NewPolicyDefaults(cfg config.Config) policy.Defaults {
	return policy.Defaults{SlotCapacity: cfg.Arbiter.DefaultSlotCapacity}
}

func NewBaselineSettings(cfg config.Config) shared.BaselineSettings {
	return shared.BaselineSettings{
		TrailingWeeks: cfg.Arbiter.TrailingWeeks,
		Defaults: performance.BaselineDefaults{
			WalkinSpendPerCover: cfg.Arbiter.DefaultWalkinSpend,
			OccupancyRate:       cfg.Arbiter.DefaultOccupancyRate,
		},
	}
}

func NewBookingSettings(cfg config.Config) commands.BookingSettings {
	return commands.BookingSettings{
		ProcessTimeout:  cfg.Arbiter.ProcessTimeout,
		ExpiryBatchSize: cfg.Arbiter.ExpiryBatchSize,
	}
}
