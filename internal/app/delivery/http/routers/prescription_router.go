package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.PrescriptionController) {
	doctorOnly := middlewares.RequireRole(constvars.RoleDoctor)

	router.With(middlewares.Authenticate, doctorOnly).Post("/", ctrl.SubmitPrescription)
	router.With(middlewares.Authenticate).Get("/", ctrl.ListPrescriptions)
	router.With(middlewares.Authenticate).Get("/{prescription_id}", ctrl.GetPrescription)
	router.With(middlewares.Authenticate, doctorOnly).Patch("/{prescription_id}", ctrl.UpdatePrescription)
	router.With(middlewares.Authenticate, doctorOnly).Delete("/{prescription_id}", ctrl.DeletePrescription)
}
