package bootstrap

import (
	"storezee/cmd/bootstrap/components"
	"storezee/internal/pkg/metrics"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	ObjectStoreModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.Invoke(metrics.Register),
)
