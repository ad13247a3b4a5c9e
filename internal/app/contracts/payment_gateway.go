package contracts

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error)
	// VerifyWebhook checks the provider signature over the raw body and
	// returns the decoded event; an invalid signature must cause the
	// caller to reject the request without applying the event.
	VerifyWebhook(payload []byte, signatureHeader string) (*responses.WebhookEvent, error)
}
