package components

import (
	"travel-loyalty-booking/internal/handler"
	"travel-loyalty-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCancellationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
