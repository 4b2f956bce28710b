package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(cart *api.CartHandler, checkout *api.CheckoutHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Cart:     cart,
		Checkout: checkout,
		Admin:    admin,
	}
}
