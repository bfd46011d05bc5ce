package components

import (
	"tablebook/internal/handler"
	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Options(
	fx.Provide(
		api.NewRestaurantHandler,
		api.NewTableHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,

		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
