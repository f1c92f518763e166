package components

import (
	"hotel-desk/internal/handler"
	"hotel-desk/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewClientHandler,
		api.NewRoomHandler,
		api.NewHotelHandler,
	),
	fx.Invoke(handler.NewRouter),
)
