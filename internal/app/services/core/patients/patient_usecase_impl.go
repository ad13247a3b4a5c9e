package patients

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// registerRetryLimit bounds how often a registration with a server-derived
// token is retried when another registration claims the same token first.
const registerRetryLimit = 3

type patientUsecase struct {
	PatientRepository      contracts.PatientRepository
	PrescriptionRepository contracts.PrescriptionRepository
	Log                    *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:      patientRepository,
		PrescriptionRepository: prescriptionRepository,
		Log:                    logger,
	}
}

// Register creates the patient with a queue token. A client-pinned token
// that is already taken fails immediately with a conflict; a server-derived
// token is re-derived and retried when it loses the race to the unique
// index.
func (uc *patientUsecase) Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error) {
	patient := &models.Patient{
		Name:   request.Name,
		Age:    request.Age,
		Gender: request.Gender,
		Contact: models.Contact{
			Phone:   request.Contact.Phone,
			Email:   request.Contact.Email,
			Address: request.Contact.Address,
		},
	}

	if request.TokenNumber > 0 {
		patient.TokenNumber = request.TokenNumber
		return uc.insertPatient(ctx, patient)
	}

	var lastErr error
	for attempt := 0; attempt < registerRetryLimit; attempt++ {
		highest, err := uc.PatientRepository.FindHighestTokenNumber(ctx)
		if err != nil {
			return nil, err
		}
		patient.TokenNumber = highest + 1

		created, err := uc.insertPatient(ctx, patient)
		if err == nil {
			return created, nil
		}
		if !isTokenConflict(err) {
			return nil, err
		}
		lastErr = err
		uc.Log.Debug("queue token taken between derivation and insert, retrying",
			zap.Int("tokenNumber", patient.TokenNumber),
			zap.Int("attempt", attempt+1),
		)
	}
	return nil, lastErr
}

func (uc *patientUsecase) insertPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID
	return patient, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	if request.Name != nil {
		patient.Name = *request.Name
	}
	if request.Age != nil {
		patient.Age = *request.Age
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.Contact != nil {
		patient.Contact = models.Contact{
			Phone:   request.Contact.Phone,
			Email:   request.Contact.Email,
			Address: request.Contact.Address,
		}
	}
	patient.UpdatedAt = time.Now()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// DeletePatient removes a waiting patient from the queue. Once a doctor has
// written any prescription for the patient, the record is part of the
// treatment trail and can only leave through the bill cascade.
func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}

	count, err := uc.PrescriptionRepository.CountByPatientID(ctx, patientID)
	if err != nil {
		return err
	}
	if count > 0 {
		return exceptions.ErrPatientAlreadyTreated(nil)
	}

	return uc.PatientRepository.DeleteByID(ctx, patientID)
}

func isTokenConflict(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict
}
