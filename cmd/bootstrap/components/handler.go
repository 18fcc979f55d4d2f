package components

import (
	"organic-storefront/internal/handler"
	"organic-storefront/internal/handler/api"
	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewStorefrontHandler,
		api.NewAdminOrderHandler,
		api.NewAdminInventoryHandler,
		api.NewAdminBannerHandler,
		api.NewAdminSettingsHandler,
		func(cfg config.Config) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(cfg.Auth)
		},
	),
	fx.Invoke(handler.NewRouter),
)
