package components

import (
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewClientQueries,
		queries.NewRoomQueries,
		queries.NewHotelQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewClientCommands,
	),
)
