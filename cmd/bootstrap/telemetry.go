package bootstrap

import (
	"context"

	"dealstream/internal/pkg/config"
	"dealstream/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(
		NewTelemetry,
	),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config) (telemetry.Telemetry, error) {
	tel, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return telemetry.Telemetry{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tel.Shutdown(ctx)
		},
	})
	return tel, nil
}
