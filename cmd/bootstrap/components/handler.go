package components

import (
	"smartpark/internal/handler"
	"smartpark/internal/handler/api"
	"smartpark/internal/handler/middleware"
	"smartpark/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieConfig,
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewSlotHandler,
		api.NewVehicleHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}
