package patients

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePatientRepo struct {
	patients map[string]*models.Patient
	// conflictRounds makes the next N inserts fail as if another
	// registration claimed the token first.
	conflictRounds int
	highestToken   int
	insertAttempts int
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]*models.Patient)}
}

func (f *fakePatientRepo) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	f.insertAttempts++
	if f.conflictRounds > 0 {
		f.conflictRounds--
		f.highestToken = patient.TokenNumber
		return "", exceptions.ErrTokenNumberConflict(nil)
	}
	id := fmt.Sprintf("patient-%d", len(f.patients)+1)
	clone := *patient
	clone.ID = id
	f.patients[id] = &clone
	if patient.TokenNumber > f.highestToken {
		f.highestToken = patient.TokenNumber
	}
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
	return f.highestToken, nil
}

func (f *fakePatientRepo) FindAllByTokenOrder(_ context.Context) ([]models.Patient, error) {
	return f.FindAll(context.Background())
}

func (f *fakePatientRepo) UpdatePatient(_ context.Context, patient *models.Patient) error {
	clone := *patient
	f.patients[patient.ID] = &clone
	return nil
}

func (f *fakePatientRepo) DeleteByID(_ context.Context, patientID string) error {
	delete(f.patients, patientID)
	return nil
}

type fakePrescriptionRepo struct {
	countForPatient map[string]int64
}

func (f *fakePrescriptionRepo) CreatePrescription(_ context.Context, _ *models.Prescription) (string, error) {
	return "", nil
}
func (f *fakePrescriptionRepo) FindAll(_ context.Context) ([]models.Prescription, error) {
	return nil, nil
}
func (f *fakePrescriptionRepo) FindByID(_ context.Context, _ string) (*models.Prescription, error) {
	return nil, nil
}
func (f *fakePrescriptionRepo) FindLatestByPatientID(_ context.Context, _ string) (*models.Prescription, error) {
	return nil, nil
}
func (f *fakePrescriptionRepo) CountByPatientID(_ context.Context, patientID string) (int64, error) {
	return f.countForPatient[patientID], nil
}
func (f *fakePrescriptionRepo) UpdatePrescription(_ context.Context, _ *models.Prescription) error {
	return nil
}
func (f *fakePrescriptionRepo) DeleteByID(_ context.Context, _ string) error           { return nil }
func (f *fakePrescriptionRepo) DeleteAllByPatientID(_ context.Context, _ string) error { return nil }

func registerRequest() *requests.RegisterPatient {
	return &requests.RegisterPatient{
		Name:   "Asha Rao",
		Age:    34,
		Gender: "female",
		Contact: requests.ContactPayload{
			Phone: "9876543210",
		},
	}
}

func TestRegister(t *testing.T) {
	t.Run("First Patient Gets Token One", func(t *testing.T) {
		repo := newFakePatientRepo()
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())

		patient, err := uc.Register(context.Background(), registerRequest())

		assert.NoError(t, err)
		assert.Equal(t, 1, patient.TokenNumber)
		assert.NotEmpty(t, patient.ID)
	})

	t.Run("Next Token Is Highest Plus One", func(t *testing.T) {
		repo := newFakePatientRepo()
		repo.highestToken = 41
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())

		patient, err := uc.Register(context.Background(), registerRequest())

		assert.NoError(t, err)
		assert.Equal(t, 42, patient.TokenNumber)
	})

	t.Run("Derived Token Retries After Losing The Race", func(t *testing.T) {
		repo := newFakePatientRepo()
		repo.conflictRounds = 2
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())

		patient, err := uc.Register(context.Background(), registerRequest())

		assert.NoError(t, err)
		assert.Equal(t, 3, repo.insertAttempts, "two conflicts then success")
		assert.NotZero(t, patient.TokenNumber)
	})

	t.Run("Derived Token Gives Up After The Retry Limit", func(t *testing.T) {
		repo := newFakePatientRepo()
		repo.conflictRounds = 10
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())

		_, err := uc.Register(context.Background(), registerRequest())

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, registerRetryLimit, repo.insertAttempts)
	})

	t.Run("Pinned Token Conflict Fails Without Retry", func(t *testing.T) {
		repo := newFakePatientRepo()
		repo.conflictRounds = 1
		request := registerRequest()
		request.TokenNumber = 5
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())

		_, err := uc.Register(context.Background(), request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 1, repo.insertAttempts, "a client-chosen token is never silently replaced")
	})

	t.Run("Pinned Token Is Used Verbatim", func(t *testing.T) {
		repo := newFakePatientRepo()
		request := registerRequest()
		request.TokenNumber = 99
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())

		patient, err := uc.Register(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, 99, patient.TokenNumber)
	})
}

func TestDeletePatient(t *testing.T) {
	t.Run("Untreated Patient Can Be Removed", func(t *testing.T) {
		repo := newFakePatientRepo()
		uc := NewPatientUsecase(repo, &fakePrescriptionRepo{}, zap.NewNop())
		patient, _ := uc.Register(context.Background(), registerRequest())

		err := uc.DeletePatient(context.Background(), patient.ID)

		assert.NoError(t, err)
		remaining, _ := repo.FindByID(context.Background(), patient.ID)
		assert.Nil(t, remaining)
	})

	t.Run("Treated Patient Is Protected", func(t *testing.T) {
		repo := newFakePatientRepo()
		prescriptionRepo := &fakePrescriptionRepo{countForPatient: map[string]int64{}}
		uc := NewPatientUsecase(repo, prescriptionRepo, zap.NewNop())
		patient, _ := uc.Register(context.Background(), registerRequest())
		prescriptionRepo.countForPatient[patient.ID] = 2

		err := uc.DeletePatient(context.Background(), patient.ID)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPatientAlreadyTreated, customErr.ClientMessage)

		remaining, _ := repo.FindByID(context.Background(), patient.ID)
		assert.NotNil(t, remaining, "protected patient is left in place")
	})

	t.Run("Missing Patient Returns Not Found", func(t *testing.T) {
		uc := NewPatientUsecase(newFakePatientRepo(), &fakePrescriptionRepo{}, zap.NewNop())

		err := uc.DeletePatient(context.Background(), "ghost")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
