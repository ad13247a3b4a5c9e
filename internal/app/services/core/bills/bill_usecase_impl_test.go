package bills

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			FrontendBaseURL: "http://localhost:3000",
		},
		PaymentGateway: config.PaymentGateway{
			Currency: "inr",
		},
	}
}

func newBillFixture(billRepo *fakeBillRepo, patientRepo *fakePatientRepo, archive *fakeArchiveService, gateway *fakePaymentGateway) contracts.BillUsecase {
	return NewBillUsecase(billRepo, patientRepo, archive, gateway, nil, testInternalConfig(), zap.NewNop())
}

func pendingBill(id, patientID string, amount float64) *models.Bill {
	return &models.Bill{
		ID:          id,
		BillID:      "BILL-1700000000000-42",
		Amount:      amount,
		IssueDate:   time.Now(),
		Status:      models.BillStatusPending,
		PatientID:   patientID,
		PatientName: "Asha Rao",
	}
}

func waitingPatient(id string) *models.Patient {
	return &models.Patient{ID: id, Name: "Asha Rao", Age: 34, Gender: "female", TokenNumber: 7}
}

func TestCreateBill(t *testing.T) {
	t.Run("Creates Pending Bill With Generated Identifier", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo()
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		bill, err := uc.CreateBill(context.Background(), &requests.CreateBill{PatientID: "patient-1", Amount: 450})

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusPending, bill.Status, "new bills start pending")
		assert.Equal(t, "Asha Rao", bill.PatientName, "patient name is denormalized onto the bill")
		assert.Regexp(t, regexp.MustCompile(`^BILL-\d{13}-\d{1,3}$`), bill.BillID)
		assert.NotEmpty(t, bill.ID)
	})

	t.Run("Rejects Unknown Patient", func(t *testing.T) {
		uc := newBillFixture(newFakeBillRepo(), newFakePatientRepo(), &fakeArchiveService{}, &fakePaymentGateway{})

		_, err := uc.CreateBill(context.Background(), &requests.CreateBill{PatientID: "ghost", Amount: 450})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("Paid Transition Archives Exactly Once", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		archive := &fakeArchiveService{}
		uc := newBillFixture(billRepo, patientRepo, archive, &fakePaymentGateway{})

		bill, err := uc.MarkPaidViaCashFlow(context.Background(), "bill-1")

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusPaid, bill.Status)
		assert.Equal(t, 1, archive.archiveCalls, "one paid transition writes one history record")

		stored, _ := billRepo.FindByID(context.Background(), "bill-1")
		assert.Equal(t, models.BillStatusPaid, stored.Status, "paid status is persisted")
	})

	t.Run("Repeated Confirmation Is Idempotent", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		archive := &fakeArchiveService{}
		uc := newBillFixture(billRepo, patientRepo, archive, &fakePaymentGateway{})

		_, err := uc.MarkPaidViaCashFlow(context.Background(), "bill-1")
		assert.NoError(t, err)
		_, err = uc.MarkPaidViaCashFlow(context.Background(), "bill-1")
		assert.NoError(t, err)

		assert.Equal(t, 1, archive.archiveCalls, "second confirmation must not archive again")
	})

	t.Run("Archival Failure Reverts The Transition", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		archive := &fakeArchiveService{archiveErr: errors.New("histories collection unavailable")}
		uc := newBillFixture(billRepo, patientRepo, archive, &fakePaymentGateway{})

		_, err := uc.MarkPaidViaCashFlow(context.Background(), "bill-1")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)

		stored, _ := billRepo.FindByID(context.Background(), "bill-1")
		assert.Equal(t, models.BillStatusPending, stored.Status, "failed archival must not leave the bill paid")
	})

	t.Run("Missing Bill Returns Not Found", func(t *testing.T) {
		uc := newBillFixture(newFakeBillRepo(), newFakePatientRepo(), &fakeArchiveService{}, &fakePaymentGateway{})

		_, err := uc.MarkPaidViaCashFlow(context.Background(), "ghost")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestUpdateBill(t *testing.T) {
	t.Run("Status Patch To Paid Goes Through The Paid Transition", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		archive := &fakeArchiveService{}
		uc := newBillFixture(billRepo, patientRepo, archive, &fakePaymentGateway{})

		status := string(models.BillStatusPaid)
		bill, err := uc.UpdateBill(context.Background(), "bill-1", &requests.UpdateBill{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusPaid, bill.Status)
		assert.Equal(t, 1, archive.archiveCalls)
	})

	t.Run("Status Patch To Failed Does Not Archive", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		archive := &fakeArchiveService{}
		uc := newBillFixture(billRepo, patientRepo, archive, &fakePaymentGateway{})

		status := string(models.BillStatusFailed)
		bill, err := uc.UpdateBill(context.Background(), "bill-1", &requests.UpdateBill{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusFailed, bill.Status)
		assert.Equal(t, 0, archive.archiveCalls)
	})

	t.Run("Amount Patch Keeps Status", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		amount := 700.0
		bill, err := uc.UpdateBill(context.Background(), "bill-1", &requests.UpdateBill{Amount: &amount})

		assert.NoError(t, err)
		assert.Equal(t, 700.0, bill.Amount)
		assert.Equal(t, models.BillStatusPending, bill.Status)
	})
}

func TestUpsertForPatient(t *testing.T) {
	t.Run("No Existing Bill Creates One", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo()
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		bill, err := uc.UpsertForPatient(context.Background(), &requests.UpsertBill{PatientID: "patient-1", Amount: 500})

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusPending, bill.Status)
		assert.Equal(t, 500.0, bill.Amount)
	})

	t.Run("Existing Pending Bill Is Updated In Place", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		bill, err := uc.UpsertForPatient(context.Background(), &requests.UpsertBill{PatientID: "patient-1", Amount: 700})

		assert.NoError(t, err)
		assert.Equal(t, "bill-1", bill.ID, "pending bill is reused, not duplicated")
		assert.Equal(t, 700.0, bill.Amount)
		assert.Equal(t, models.BillStatusPending, bill.Status)
	})

	t.Run("Changed Amount On Paid Bill Reopens It", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		paid := pendingBill("bill-1", "patient-1", 450)
		paid.Status = models.BillStatusPaid
		billRepo := newFakeBillRepo(paid)
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		bill, err := uc.UpsertForPatient(context.Background(), &requests.UpsertBill{PatientID: "patient-1", Amount: 700})

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusPending, bill.Status, "amount change invalidates the previous settlement")
		assert.Equal(t, 700.0, bill.Amount)
	})

	t.Run("Same Amount On Paid Bill Stays Paid", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		paid := pendingBill("bill-1", "patient-1", 450)
		paid.Status = models.BillStatusPaid
		billRepo := newFakeBillRepo(paid)
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		bill, err := uc.UpsertForPatient(context.Background(), &requests.UpsertBill{PatientID: "patient-1", Amount: 450})

		assert.NoError(t, err)
		assert.Equal(t, models.BillStatusPaid, bill.Status)
	})
}

func TestUpsertThenSettleScenario(t *testing.T) {
	// Front desk books 500, corrects to 700 before the patient pays, then
	// settles; the history must show one record with the final amount.
	patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
	billRepo := newFakeBillRepo()
	archive := &fakeArchiveService{}
	uc := newBillFixture(billRepo, patientRepo, archive, &fakePaymentGateway{})

	first, err := uc.UpsertForPatient(context.Background(), &requests.UpsertBill{PatientID: "patient-1", Amount: 500})
	assert.NoError(t, err)

	second, err := uc.UpsertForPatient(context.Background(), &requests.UpsertBill{PatientID: "patient-1", Amount: 700})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "correction reuses the same bill")
	assert.Equal(t, 700.0, second.Amount)
	assert.Equal(t, models.BillStatusPending, second.Status)

	paid, err := uc.MarkPaidViaCashFlow(context.Background(), second.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, paid.Status)
	assert.Equal(t, 1, archive.archiveCalls)
	assert.Equal(t, 700.0, archive.lastBill.Amount, "the settled amount is what gets archived")
}

func TestInitiatePayment(t *testing.T) {
	t.Run("Converts Amount To Minor Units And Tags The Bill", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 19.99))
		gateway := &fakePaymentGateway{}
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, gateway)

		intent, err := uc.InitiatePayment(context.Background(), &requests.PayBill{BillID: "bill-1"})

		assert.NoError(t, err)
		assert.Equal(t, "pi_test", intent.PaymentIntentID)
		assert.Equal(t, int64(1999), gateway.lastIntentRequest.AmountMinorUnits)
		assert.Equal(t, "inr", gateway.lastIntentRequest.Currency)
		assert.Equal(t, "bill-1", gateway.lastIntentRequest.Metadata[constvars.PaymentMetadataBillIDKey])
	})

	t.Run("Override Amount Wins", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		gateway := &fakePaymentGateway{}
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, gateway)

		override := 300.0
		_, err := uc.InitiatePayment(context.Background(), &requests.PayBill{BillID: "bill-1", Amount: &override})

		assert.NoError(t, err)
		assert.Equal(t, int64(30000), gateway.lastIntentRequest.AmountMinorUnits)
	})

	t.Run("Already Paid Bill Is Rejected", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		paid := pendingBill("bill-1", "patient-1", 450)
		paid.Status = models.BillStatusPaid
		billRepo := newFakeBillRepo(paid)
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, &fakePaymentGateway{})

		_, err := uc.InitiatePayment(context.Background(), &requests.PayBill{BillID: "bill-1"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("Builds Session From Bill And Frontend URLs", func(t *testing.T) {
		patientRepo := newFakePatientRepo(waitingPatient("patient-1"))
		billRepo := newFakeBillRepo(pendingBill("bill-1", "patient-1", 450))
		gateway := &fakePaymentGateway{}
		uc := newBillFixture(billRepo, patientRepo, &fakeArchiveService{}, gateway)

		session, err := uc.CreateCheckoutSession(context.Background(), &requests.CreateCheckout{BillID: "bill-1"})

		assert.NoError(t, err)
		assert.Equal(t, "https://checkout.test/session", session.URL)
		assert.Equal(t, int64(45000), gateway.lastCheckoutRequest.AmountMinorUnits)
		assert.Equal(t, "Bill for Asha Rao", gateway.lastCheckoutRequest.ProductLabel)
		assert.Equal(t, "http://localhost:3000/payment/success", gateway.lastCheckoutRequest.SuccessURL)
		assert.Equal(t, "http://localhost:3000/payment/cancel", gateway.lastCheckoutRequest.CancelURL)
	})
}
