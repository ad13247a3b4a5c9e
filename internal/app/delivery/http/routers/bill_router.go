package routers

import (
	"clinicdesk-service/internal/app/delivery/http/controllers"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBillRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.BillController, webhookCtrl *controllers.WebhookController) {
	receptionistOnly := middlewares.RequireRole(constvars.RoleReceptionist)

	router.With(middlewares.Authenticate, receptionistOnly).Post("/", ctrl.CreateBill)
	router.With(middlewares.Authenticate).Get("/", ctrl.ListBills)
	router.With(middlewares.Authenticate, receptionistOnly).Post("/upsert", ctrl.UpsertBill)
	router.With(middlewares.Authenticate, receptionistOnly).Post("/pay", ctrl.InitiatePayment)
	router.With(middlewares.Authenticate, receptionistOnly).Post("/checkout-session", ctrl.CreateCheckoutSession)
	router.With(middlewares.Authenticate).Get("/{bill_id}", ctrl.GetBill)
	router.With(middlewares.Authenticate, receptionistOnly).Patch("/{bill_id}", ctrl.UpdateBill)
	router.With(middlewares.Authenticate, receptionistOnly).Post("/{bill_id}/cash", ctrl.MarkPaidViaCash)
	router.With(middlewares.Authenticate, receptionistOnly).Delete("/{bill_id}", ctrl.DeleteBill)

	// Provider callbacks authenticate by signature, not by bearer token.
	router.Post("/webhook", webhookCtrl.HandlePaymentWebhook)
}
