package payment_gateway

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type stripeService struct {
	api           *client.API
	webhookSecret string
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	api := &client.API{}
	api.Init(internalConfig.PaymentGateway.SecretKey, nil)
	return &stripeService{
		api:           api,
		webhookSecret: internalConfig.PaymentGateway.WebhookSecret,
	}
}

func (s *stripeService) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(request.AmountMinorUnits),
		Currency: stripe.String(request.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		// Keeps strong customer authentication (3-D Secure class) in play.
		SetupFutureUsage: stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession)),
	}
	for key, value := range request.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	return &responses.PaymentIntent{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Status:          string(intent.Status),
		RequiresAction:  intent.Status == stripe.PaymentIntentStatusRequiresAction,
	}, nil
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(request.SuccessURL),
		CancelURL:          stripe.String(request.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(request.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(request.ProductLabel),
					},
					UnitAmount: stripe.Int64(request.AmountMinorUnits),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	for key, value := range request.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	return &responses.CheckoutSession{URL: session.URL}, nil
}

func (s *stripeService) VerifyWebhook(payload []byte, signatureHeader string) (*responses.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		return nil, exceptions.ErrInvalidWebhookSignature(err)
	}

	var object struct {
		Metadata map[string]string `json:"metadata"`
	}
	if len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return &responses.WebhookEvent{
		ID:     event.ID,
		Type:   string(event.Type),
		BillID: object.Metadata[constvars.PaymentMetadataBillIDKey],
	}, nil
}

func wrapProviderError(err error) error {
	if stripeErr, ok := err.(*stripe.Error); ok {
		return exceptions.ErrPaymentProvider(err, string(stripeErr.Code))
	}
	return exceptions.ErrPaymentProvider(err, "")
}
