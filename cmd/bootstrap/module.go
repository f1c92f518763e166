package bootstrap

import (
	"hotel-desk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
