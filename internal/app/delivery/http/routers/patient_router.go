package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.PatientController) {
	receptionistOnly := middlewares.RequireRole(constvars.RoleReceptionist)

	router.With(middlewares.Authenticate, receptionistOnly).Post("/", ctrl.RegisterPatient)
	router.With(middlewares.Authenticate).Get("/", ctrl.ListPatients)
	router.With(middlewares.Authenticate).Get("/{patient_id}", ctrl.GetPatient)
	router.With(middlewares.Authenticate, receptionistOnly).Patch("/{patient_id}", ctrl.UpdatePatient)
	router.With(middlewares.Authenticate, receptionistOnly).Delete("/{patient_id}", ctrl.DeletePatient)
}
