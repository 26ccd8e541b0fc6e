package components

import (
	"seapass-bff/internal/handler"
	"seapass-bff/internal/handler/api"
	"seapass-bff/internal/handler/middleware"
	"seapass-bff/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewReservationHandler,
		api.NewConfirmationHandler,
		api.NewSettingsHandler,
		api.NewProfileHandler,
		NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSessionMiddleware(cfg config.Config) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(cfg.Auth)
}
