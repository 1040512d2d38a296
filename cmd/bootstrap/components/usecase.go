package components

import (
	"log/slog"

	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/pkg/clock"
	"travel-loyalty-booking/internal/pkg/config"
	"travel-loyalty-booking/internal/usecase/commands"
	"travel-loyalty-booking/internal/usecase/queries"
	"travel-loyalty-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewPlanner,
	NewExecutor,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCancellationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCancellationQueries,
	),
)

func NewPlanner(gw shared.LedgerGateway, clk clock.Clock, logger *slog.Logger, cfg config.Config) *cancellation.Planner {
	return cancellation.NewPlanner(gw, clk, logger, cfg.Cancellation.DefaultReason)
}

func NewExecutor(
	gw shared.LedgerGateway,
	bookings shared.BookingRepository,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *commands.Executor {
	return commands.NewExecutor(gw, bookings, clk, logger, commands.ExecutorOptions{
		StepTimeout:         cfg.Cancellation.StepTimeout,
		HoldFailedReversals: cfg.Cancellation.FailedReversalPolicy == config.FailedReversalHold,
	})
}
