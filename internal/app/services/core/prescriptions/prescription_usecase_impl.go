package prescriptions

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"time"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientRepository contracts.PatientRepository,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		PatientRepository:      patientRepository,
	}
}

func (uc *prescriptionUsecase) Submit(ctx context.Context, doctor *models.Identity, request *requests.SubmitPrescription) (*models.Prescription, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	now := time.Now()
	prescription := &models.Prescription{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.UserID,
		Diagnosis:   request.Diagnosis,
		Medicines:   toMedicines(request.Medicines),
		Notes:       request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID
	return prescription, nil
}

func (uc *prescriptionUsecase) ListPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	return uc.PrescriptionRepository.FindAll(ctx)
}

func (uc *prescriptionUsecase) GetPrescription(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotExist(nil)
	}
	return prescription, nil
}

func (uc *prescriptionUsecase) UpdatePrescription(ctx context.Context, doctor *models.Identity, prescriptionID string, request *requests.UpdatePrescription) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotExist(nil)
	}

	if request.Diagnosis != nil {
		prescription.Diagnosis = *request.Diagnosis
	}
	if request.Medicines != nil {
		prescription.Medicines = toMedicines(request.Medicines)
	}
	if request.Notes != nil {
		prescription.Notes = *request.Notes
	}
	prescription.DoctorID = doctor.UserID
	prescription.UpdatedAt = time.Now()

	if err := uc.PrescriptionRepository.UpdatePrescription(ctx, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

func (uc *prescriptionUsecase) DeletePrescription(ctx context.Context, prescriptionID string) error {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrPrescriptionNotExist(nil)
	}
	return uc.PrescriptionRepository.DeleteByID(ctx, prescriptionID)
}

func toMedicines(payloads []requests.MedicinePayload) []models.Medicine {
	medicines := make([]models.Medicine, 0, len(payloads))
	for _, payload := range payloads {
		medicines = append(medicines, models.Medicine{
			Name:      payload.Name,
			Dosage:    payload.Dosage,
			Frequency: payload.Frequency,
			Duration:  payload.Duration,
			Notes:     payload.Notes,
		})
	}
	return medicines
}
