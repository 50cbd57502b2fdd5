package bootstrap

import (
	"context"

	"dealstream/internal/infra/realtime"
	"dealstream/internal/pkg/config"
	"dealstream/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
		func(h *realtime.Hub) commands.OfferBroadcaster { return h },
	),
)

func NewHub(lc fx.Lifecycle, cfg config.Config) *realtime.Hub {
	hub := realtime.NewHub(cfg.Realtime)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}
