package bootstrap

import (
	"storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	GatewayModule,
	LockModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
