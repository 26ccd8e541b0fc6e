package bootstrap

import (
	"seapass-bff/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
