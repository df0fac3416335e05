package components

import (
	"projector-reservation/internal/handler"
	"projector-reservation/internal/handler/api"
	"projector-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewProjectorHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	projector *api.ProjectorHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		User:         user,
		Availability: availability,
		Reservation:  reservation,
		Projector:    projector,
		Report:       report,
	}
}
