package components

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/token"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) booking.ConflictPolicy {
		return booking.NewRandomConflictPolicy(cfg.Booking.ConflictProbability, nil)
	},
	fx.Annotate(
		func(s *token.Service) *token.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewReviewQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
		usecase.NewAvailabilityChecker,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewUserCommands,
	),
)
