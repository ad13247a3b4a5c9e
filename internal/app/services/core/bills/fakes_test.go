package bills

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"sort"
)

// In-memory stand-ins for the mongo repositories and the outward services,
// shared by the tests in this package.

type fakePatientRepo struct {
	patients map[string]*models.Patient
	deleted  []string
}

func newFakePatientRepo(patients ...*models.Patient) *fakePatientRepo {
	repo := &fakePatientRepo{patients: make(map[string]*models.Patient)}
	for _, p := range patients {
		repo.patients[p.ID] = p
	}
	return repo
}

func (f *fakePatientRepo) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	id := fmt.Sprintf("patient-%d", len(f.patients)+1)
	clone := *patient
	clone.ID = id
	f.patients[id] = &clone
	return id, nil
}

func (f *fakePatientRepo) FindAll(_ context.Context) ([]models.Patient, error) {
	result := make([]models.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePatientRepo) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	p, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakePatientRepo) FindHighestTokenNumber(_ context.Context) (int, error) {
	highest := 0
	for _, p := range f.patients {
		if p.TokenNumber > highest {
			highest = p.TokenNumber
		}
	}
	return highest, nil
}

func (f *fakePatientRepo) FindAllByTokenOrder(_ context.Context) ([]models.Patient, error) {
	result, _ := f.FindAll(context.Background())
	sort.Slice(result, func(i, j int) bool { return result[i].TokenNumber < result[j].TokenNumber })
	return result, nil
}

func (f *fakePatientRepo) UpdatePatient(_ context.Context, patient *models.Patient) error {
	clone := *patient
	f.patients[patient.ID] = &clone
	return nil
}

func (f *fakePatientRepo) DeleteByID(_ context.Context, patientID string) error {
	delete(f.patients, patientID)
	f.deleted = append(f.deleted, patientID)
	return nil
}

type fakePrescriptionRepo struct {
	prescriptions map[string]*models.Prescription
	deletedFor    []string
}

func newFakePrescriptionRepo(prescriptions ...*models.Prescription) *fakePrescriptionRepo {
	repo := &fakePrescriptionRepo{prescriptions: make(map[string]*models.Prescription)}
	for _, p := range prescriptions {
		repo.prescriptions[p.ID] = p
	}
	return repo
}

func (f *fakePrescriptionRepo) CreatePrescription(_ context.Context, prescription *models.Prescription) (string, error) {
	id := fmt.Sprintf("prescription-%d", len(f.prescriptions)+1)
	clone := *prescription
	clone.ID = id
	f.prescriptions[id] = &clone
	return id, nil
}

func (f *fakePrescriptionRepo) FindAll(_ context.Context) ([]models.Prescription, error) {
	result := make([]models.Prescription, 0, len(f.prescriptions))
	for _, p := range f.prescriptions {
		result = append(result, *p)
	}
	return result, nil
}

func (f *fakePrescriptionRepo) FindByID(_ context.Context, prescriptionID string) (*models.Prescription, error) {
	p, ok := f.prescriptions[prescriptionID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakePrescriptionRepo) FindLatestByPatientID(_ context.Context, patientID string) (*models.Prescription, error) {
	var latest *models.Prescription
	for _, p := range f.prescriptions {
		if p.PatientID != patientID {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (f *fakePrescriptionRepo) CountByPatientID(_ context.Context, patientID string) (int64, error) {
	var count int64
	for _, p := range f.prescriptions {
		if p.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

func (f *fakePrescriptionRepo) UpdatePrescription(_ context.Context, prescription *models.Prescription) error {
	clone := *prescription
	f.prescriptions[prescription.ID] = &clone
	return nil
}

func (f *fakePrescriptionRepo) DeleteByID(_ context.Context, prescriptionID string) error {
	delete(f.prescriptions, prescriptionID)
	return nil
}

func (f *fakePrescriptionRepo) DeleteAllByPatientID(_ context.Context, patientID string) error {
	for id, p := range f.prescriptions {
		if p.PatientID == patientID {
			delete(f.prescriptions, id)
		}
	}
	f.deletedFor = append(f.deletedFor, patientID)
	return nil
}

type fakeBillRepo struct {
	bills       map[string]*models.Bill
	updateErr   error
	updateCount int
	deleted     []string
}

func newFakeBillRepo(bills ...*models.Bill) *fakeBillRepo {
	repo := &fakeBillRepo{bills: make(map[string]*models.Bill)}
	for _, b := range bills {
		repo.bills[b.ID] = b
	}
	return repo
}

func (f *fakeBillRepo) CreateBill(_ context.Context, bill *models.Bill) (string, error) {
	id := fmt.Sprintf("bill-%d", len(f.bills)+1)
	clone := *bill
	clone.ID = id
	f.bills[id] = &clone
	return id, nil
}

func (f *fakeBillRepo) FindAll(_ context.Context) ([]models.Bill, error) {
	result := make([]models.Bill, 0, len(f.bills))
	for _, b := range f.bills {
		result = append(result, *b)
	}
	return result, nil
}

func (f *fakeBillRepo) FindByID(_ context.Context, billDocID string) (*models.Bill, error) {
	b, ok := f.bills[billDocID]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBillRepo) FindLatestByPatientID(_ context.Context, patientID string) (*models.Bill, error) {
	var latest *models.Bill
	for _, b := range f.bills {
		if b.PatientID != patientID {
			continue
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeBillRepo) UpdateBill(_ context.Context, bill *models.Bill) error {
	f.updateCount++
	if f.updateErr != nil {
		return f.updateErr
	}
	clone := *bill
	f.bills[bill.ID] = &clone
	return nil
}

func (f *fakeBillRepo) DeleteByID(_ context.Context, billDocID string) error {
	delete(f.bills, billDocID)
	f.deleted = append(f.deleted, billDocID)
	return nil
}

type fakeArchiveService struct {
	archiveCalls int
	archiveErr   error
	lastBill     *models.Bill
}

func (f *fakeArchiveService) Archive(_ context.Context, bill *models.Bill) (*models.HistoryRecord, error) {
	f.archiveCalls++
	clone := *bill
	f.lastBill = &clone
	if f.archiveErr != nil {
		return nil, f.archiveErr
	}
	return &models.HistoryRecord{ID: "history-1"}, nil
}

func (f *fakeArchiveService) ListHistory(_ context.Context) ([]models.HistoryRecord, error) {
	return nil, nil
}

type fakePaymentGateway struct {
	lastIntentRequest   *requests.CreatePaymentIntent
	lastCheckoutRequest *requests.CreateCheckoutSession
}

func (f *fakePaymentGateway) CreatePaymentIntent(_ context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	f.lastIntentRequest = request
	return &responses.PaymentIntent{PaymentIntentID: "pi_test", ClientSecret: "secret", Status: "requires_payment_method"}, nil
}

func (f *fakePaymentGateway) CreateCheckoutSession(_ context.Context, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error) {
	f.lastCheckoutRequest = request
	return &responses.CheckoutSession{URL: "https://checkout.test/session"}, nil
}

func (f *fakePaymentGateway) VerifyWebhook(_ []byte, _ string) (*responses.WebhookEvent, error) {
	return nil, nil
}
