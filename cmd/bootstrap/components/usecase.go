package components

import (
	"storezee/internal/domain/booking"
	"storezee/internal/pkg/clock"
	"storezee/internal/pkg/config"
	"storezee/internal/usecase/commands"
	"storezee/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewAvatarPicker,
		fx.As(new(booking.ProfilePicturePicker)),
	),
	func(cfg config.Config) commands.WorkflowOptions {
		return commands.WorkflowOptionsFromConfig(cfg.Booking)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCustomerQueries,
	),
)
