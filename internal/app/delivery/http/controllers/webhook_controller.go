package controllers

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxWebhookBodyBytes caps the provider payload; Stripe events are a few
// kilobytes at most.
const maxWebhookBodyBytes = 1 << 16

type WebhookController struct {
	Log            *zap.Logger
	WebhookUsecase contracts.WebhookUsecase
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, webhookUsecase contracts.WebhookUsecase) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:            logger,
			WebhookUsecase: webhookUsecase,
		}
	})
	return webhookControllerInstance
}

// HandlePaymentWebhook receives provider callbacks. The raw body must reach
// signature verification untouched, so no JSON decoding happens here.
func (ctrl *WebhookController) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	signatureHeader := r.Header.Get(constvars.HeaderStripeSignature)
	if err := ctrl.WebhookUsecase.ProcessEvent(ctx, payload, signatureHeader); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookReceivedSuccess, nil)
}
