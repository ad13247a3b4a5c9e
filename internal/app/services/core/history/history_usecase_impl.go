package history

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"time"
)

type historyUsecase struct {
	HistoryRepository      contracts.HistoryRepository
	PatientRepository      contracts.PatientRepository
	PrescriptionRepository contracts.PrescriptionRepository
}

func NewHistoryUsecase(
	historyRepository contracts.HistoryRepository,
	patientRepository contracts.PatientRepository,
	prescriptionRepository contracts.PrescriptionRepository,
) contracts.ArchiveService {
	return &historyUsecase{
		HistoryRepository:      historyRepository,
		PatientRepository:      patientRepository,
		PrescriptionRepository: prescriptionRepository,
	}
}

// Archive joins the bill with its patient and the patient's most recent
// prescription into an independent snapshot. Both preconditions are fatal:
// the caller must treat a failure here as aborting the paid transition.
func (uc *historyUsecase) Archive(ctx context.Context, bill *models.Bill) (*models.HistoryRecord, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, bill.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	prescription, err := uc.PrescriptionRepository.FindLatestByPatientID(ctx, bill.PatientID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotExist(nil)
	}

	record := &models.HistoryRecord{
		Patient: models.PatientSnapshot{
			PatientID:   patient.ID,
			Name:        patient.Name,
			Age:         patient.Age,
			Gender:      patient.Gender,
			Contact:     patient.Contact,
			TokenNumber: patient.TokenNumber,
		},
		Bill: models.BillSnapshot{
			BillID:      bill.BillID,
			Amount:      bill.Amount,
			PaymentDate: time.Now(),
			Status:      bill.Status,
		},
		Prescription: models.PrescriptionSnapshot{
			PrescriptionID: prescription.ID,
			Diagnosis:      prescription.Diagnosis,
			Medicines:      append([]models.Medicine(nil), prescription.Medicines...),
			Notes:          prescription.Notes,
			DoctorID:       prescription.DoctorID,
		},
		ArchivedAt: time.Now(),
	}

	recordID, err := uc.HistoryRepository.CreateHistory(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	return record, nil
}

func (uc *historyUsecase) ListHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	return uc.HistoryRepository.FindAllByArchivedAtDesc(ctx)
}
