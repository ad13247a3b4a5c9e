package bills

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

type billUsecase struct {
	BillRepository    contracts.BillRepository
	PatientRepository contracts.PatientRepository
	ArchiveService    contracts.ArchiveService
	PaymentGateway    contracts.PaymentGatewayService
	CascadeDeleter    contracts.CascadeDeleter
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewBillUsecase(
	billRepository contracts.BillRepository,
	patientRepository contracts.PatientRepository,
	archiveService contracts.ArchiveService,
	paymentGateway contracts.PaymentGatewayService,
	cascadeDeleter contracts.CascadeDeleter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BillUsecase {
	return &billUsecase{
		BillRepository:    billRepository,
		PatientRepository: patientRepository,
		ArchiveService:    archiveService,
		PaymentGateway:    paymentGateway,
		CascadeDeleter:    cascadeDeleter,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *billUsecase) CreateBill(ctx context.Context, request *requests.CreateBill) (*models.Bill, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	now := time.Now()
	bill := &models.Bill{
		BillID:      utils.GenerateBillID(),
		Amount:      request.Amount,
		IssueDate:   now,
		Status:      models.BillStatusPending,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	billDocID, err := uc.BillRepository.CreateBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	bill.ID = billDocID
	return bill, nil
}

func (uc *billUsecase) ListBills(ctx context.Context) ([]responses.BillWithPatient, error) {
	bills, err := uc.BillRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.BillWithPatient, 0, len(bills))
	for _, bill := range bills {
		patient, err := uc.PatientRepository.FindByID(ctx, bill.PatientID)
		if err != nil {
			return nil, err
		}
		result = append(result, responses.BillWithPatient{Bill: bill, Patient: patient})
	}
	return result, nil
}

func (uc *billUsecase) GetBill(ctx context.Context, billDocID string) (*responses.BillWithPatient, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billDocID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotExist(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, bill.PatientID)
	if err != nil {
		return nil, err
	}
	return &responses.BillWithPatient{Bill: *bill, Patient: patient}, nil
}

func (uc *billUsecase) UpdateBill(ctx context.Context, billDocID string, request *requests.UpdateBill) (*models.Bill, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billDocID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotExist(nil)
	}

	if request.Amount != nil {
		bill.Amount = *request.Amount
	}
	if request.PatientName != nil {
		bill.PatientName = *request.PatientName
	}

	if request.Status != nil {
		next := models.BillStatus(*request.Status)
		if !next.Valid() {
			return nil, exceptions.ErrInvalidBillStatus(nil)
		}
		if next == models.BillStatusPaid && bill.Status != models.BillStatusPaid {
			return uc.markPaid(ctx, bill)
		}
		bill.Status = next
	}

	bill.UpdatedAt = time.Now()
	if err := uc.BillRepository.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// UpsertForPatient reuses the patient's most recent bill instead of piling
// up duplicates from repeated front-desk submissions. Changing the amount
// on an already-paid bill reopens it as pending.
func (uc *billUsecase) UpsertForPatient(ctx context.Context, request *requests.UpsertBill) (*models.Bill, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	existing, err := uc.BillRepository.FindLatestByPatientID(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return uc.CreateBill(ctx, &requests.CreateBill{PatientID: request.PatientID, Amount: request.Amount})
	}

	if existing.Status == models.BillStatusPaid && existing.Amount != request.Amount {
		existing.Status = models.BillStatusPending
	}
	existing.Amount = request.Amount
	existing.PatientName = patient.Name
	existing.UpdatedAt = time.Now()

	if err := uc.BillRepository.UpdateBill(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// MarkPaidViaCashFlow settles a bill paid at the counter, skipping the
// payment provider entirely.
func (uc *billUsecase) MarkPaidViaCashFlow(ctx context.Context, billDocID string) (*models.Bill, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billDocID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotExist(nil)
	}
	return uc.markPaid(ctx, bill)
}

// markPaid is the single entry point into the paid state. Repeated calls on
// an already-paid bill return it unchanged, which is what keeps webhook
// retries from writing a second history record. The status is persisted
// before archiving so a concurrent caller observes paid and short-circuits;
// if archiving then fails the status is reverted and the transition as a
// whole is reported failed.
func (uc *billUsecase) markPaid(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	if bill.Status == models.BillStatusPaid {
		return bill, nil
	}

	previousStatus := bill.Status
	bill.Status = models.BillStatusPaid
	bill.UpdatedAt = time.Now()
	if err := uc.BillRepository.UpdateBill(ctx, bill); err != nil {
		bill.Status = previousStatus
		return nil, err
	}

	if _, err := uc.ArchiveService.Archive(ctx, bill); err != nil {
		bill.Status = previousStatus
		bill.UpdatedAt = time.Now()
		if revertErr := uc.BillRepository.UpdateBill(ctx, bill); revertErr != nil {
			uc.Log.Error("failed to revert bill status after archival failure",
				zap.String("billId", bill.BillID),
				zap.Error(revertErr),
			)
		}
		return nil, exceptions.ErrArchivalFailed(err)
	}
	return bill, nil
}

func (uc *billUsecase) InitiatePayment(ctx context.Context, request *requests.PayBill) (*responses.PaymentIntent, error) {
	bill, err := uc.BillRepository.FindByID(ctx, request.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotExist(nil)
	}
	if bill.Status == models.BillStatusPaid {
		return nil, exceptions.ErrBillAlreadyPaid(nil)
	}

	amount := bill.Amount
	if request.Amount != nil {
		amount = *request.Amount
	}

	return uc.PaymentGateway.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{
		AmountMinorUnits: toMinorUnits(amount),
		Currency:         uc.InternalConfig.PaymentGateway.Currency,
		Metadata: map[string]string{
			constvars.PaymentMetadataBillIDKey: bill.ID,
		},
	})
}

func (uc *billUsecase) CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckout) (*responses.CheckoutSession, error) {
	bill, err := uc.BillRepository.FindByID(ctx, request.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotExist(nil)
	}
	if bill.Status == models.BillStatusPaid {
		return nil, exceptions.ErrBillAlreadyPaid(nil)
	}

	frontendBaseURL := uc.InternalConfig.App.FrontendBaseURL
	return uc.PaymentGateway.CreateCheckoutSession(ctx, &requests.CreateCheckoutSession{
		AmountMinorUnits: toMinorUnits(bill.Amount),
		Currency:         uc.InternalConfig.PaymentGateway.Currency,
		ProductLabel:     fmt.Sprintf("Bill for %s", bill.PatientName),
		SuccessURL:       fmt.Sprintf("%s/payment/success", frontendBaseURL),
		CancelURL:        fmt.Sprintf("%s/payment/cancel", frontendBaseURL),
		Metadata: map[string]string{
			constvars.PaymentMetadataBillIDKey: bill.ID,
		},
	})
}

func (uc *billUsecase) DeleteBill(ctx context.Context, billDocID string) (*responses.DeletedBill, error) {
	deletedPatientName, err := uc.CascadeDeleter.DeleteBillCascade(ctx, billDocID)
	if err != nil {
		return nil, err
	}
	return &responses.DeletedBill{DeletedPatient: deletedPatientName}, nil
}

// toMinorUnits converts a major-unit amount to the provider's smallest
// currency unit, rounding to defeat float drift on amounts like 19.99.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
