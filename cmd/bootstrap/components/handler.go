package components

import (
	"dealstream/internal/handler"
	"dealstream/internal/handler/api"
	"dealstream/internal/handler/middleware"
	"dealstream/internal/infra/realtime"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewAdminHandler,
		fx.Annotate(
			api.NewRealtimeHandler,
			fx.From(new(*realtime.Hub)),
		),
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, offer *api.OfferHandler, admin *api.AdminHandler, rt *api.RealtimeHandler) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Offer:    offer,
		Admin:    admin,
		Realtime: rt,
	}
}
