package contracts

import "context"

// WebhookUsecase applies provider-pushed payment events. Processing is
// idempotent: the same event delivered twice produces exactly one history
// record and no error on the second delivery.
type WebhookUsecase interface {
	ProcessEvent(ctx context.Context, payload []byte, signatureHeader string) error
}
