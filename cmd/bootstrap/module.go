package bootstrap

import (
	"stayhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	TokenModule,
	components.StoresModule,
	components.UseCaseModule,
	components.HandlerModule,
)
