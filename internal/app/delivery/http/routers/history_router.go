package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachHistoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.HistoryController) {
	router.With(middlewares.Authenticate).Get("/", ctrl.ListHistory)
}
