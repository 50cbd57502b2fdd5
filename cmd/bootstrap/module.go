package bootstrap

import (
	"dealstream/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything below the HTTP layer; dealsctl reuses it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	RealtimeModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	SchedulerModule,
	components.HandlerModule,
)
