package components

import (
	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/readstore"
	"hotel-desk/internal/infra/uow"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
