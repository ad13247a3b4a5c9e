package contracts

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type BillRepository interface {
	CreateBill(ctx context.Context, bill *models.Bill) (billDocID string, err error)
	FindAll(ctx context.Context) ([]models.Bill, error)
	FindByID(ctx context.Context, billDocID string) (*models.Bill, error)
	// FindLatestByPatientID returns the most recently created bill for the
	// patient, or nil when none exists.
	FindLatestByPatientID(ctx context.Context, patientID string) (*models.Bill, error)
	UpdateBill(ctx context.Context, bill *models.Bill) error
	// DeleteByID is a no-op when the bill is already gone.
	DeleteByID(ctx context.Context, billDocID string) error
}

// BillUsecase owns the bill state machine: pending (initial) moves to paid
// or failed, and every transition into paid archives a history record or
// fails the transition outright.
type BillUsecase interface {
	CreateBill(ctx context.Context, request *requests.CreateBill) (*models.Bill, error)
	ListBills(ctx context.Context) ([]responses.BillWithPatient, error)
	GetBill(ctx context.Context, billDocID string) (*responses.BillWithPatient, error)
	UpdateBill(ctx context.Context, billDocID string, request *requests.UpdateBill) (*models.Bill, error)
	UpsertForPatient(ctx context.Context, request *requests.UpsertBill) (*models.Bill, error)
	MarkPaidViaCashFlow(ctx context.Context, billDocID string) (*models.Bill, error)
	InitiatePayment(ctx context.Context, request *requests.PayBill) (*responses.PaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckout) (*responses.CheckoutSession, error)
	DeleteBill(ctx context.Context, billDocID string) (*responses.DeletedBill, error)
}

// CascadeDeleter removes a bill together with its patient and the patient's
// prescriptions, in an order that never leaves a live bill referencing a
// half-deleted patient.
type CascadeDeleter interface {
	DeleteBillCascade(ctx context.Context, billDocID string) (deletedPatientName string, err error)
}
