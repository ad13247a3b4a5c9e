package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTokenRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.TokenController) {
	router.With(middlewares.Authenticate).Get("/generate", ctrl.NextToken)
	router.With(middlewares.Authenticate).Get("/", ctrl.ListTokens)
}
