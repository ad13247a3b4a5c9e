package webhook

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const billLockExpiration = 30 * time.Second

type webhookUsecase struct {
	PaymentGateway contracts.PaymentGatewayService
	BillUsecase    contracts.BillUsecase
	LockerService  contracts.LockerService
	Log            *zap.Logger
}

func NewWebhookUsecase(
	paymentGateway contracts.PaymentGatewayService,
	billUsecase contracts.BillUsecase,
	lockerService contracts.LockerService,
	logger *zap.Logger,
) contracts.WebhookUsecase {
	return &webhookUsecase{
		PaymentGateway: paymentGateway,
		BillUsecase:    billUsecase,
		LockerService:  lockerService,
		Log:            logger,
	}
}

// ProcessEvent verifies the provider signature, then settles the referenced
// bill. Unknown event types and events for bills that no longer exist are
// acknowledged without error so the provider stops redelivering them.
func (uc *webhookUsecase) ProcessEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := uc.PaymentGateway.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		return err
	}

	// Only a completed checkout settles a bill. Intent-level events fire
	// for partial or caller-overridden amounts too, so acting on them
	// could mark a bill paid for less than what it charges.
	if event.Type != constvars.WebhookEventCheckoutSessionCompleted {
		uc.Log.Debug("ignoring webhook event type",
			zap.String("eventId", event.ID),
			zap.String("eventType", event.Type),
		)
		return nil
	}

	if event.BillID == "" {
		uc.Log.Warn("webhook event carries no bill reference, acknowledging",
			zap.String("eventId", event.ID),
			zap.String("eventType", event.Type),
		)
		return nil
	}

	// Concurrent deliveries of the same confirmation race on the status
	// check inside the paid transition. A per-bill lock serializes them;
	// the loser acknowledges and lets the winner's transition stand.
	lockKey := fmt.Sprintf(constvars.WebhookBillLockKeyFormat, event.BillID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, billLockExpiration)
	if err != nil {
		return err
	}
	if !acquired {
		uc.Log.Info("bill confirmation already in flight, acknowledging duplicate delivery",
			zap.String("eventId", event.ID),
			zap.String("billId", event.BillID),
		)
		return nil
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("failed to release bill lock, it will expire",
				zap.String("billId", event.BillID),
				zap.Error(err),
			)
		}
	}()

	if _, err := uc.BillUsecase.MarkPaidViaCashFlow(ctx, event.BillID); err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			uc.Log.Warn("webhook references a deleted bill, acknowledging",
				zap.String("eventId", event.ID),
				zap.String("billId", event.BillID),
			)
			return nil
		}
		return err
	}

	uc.Log.Info("bill settled via webhook",
		zap.String("eventId", event.ID),
		zap.String("billId", event.BillID),
	)
	return nil
}
