package bills

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

// cascadeCoordinator enforces the three-step removal order: bill first (so
// no half-deleted patient dangles a live bill), then the patient's
// prescriptions, then the patient. The steps are not one atomic
// transaction; every step tolerates an already-deleted document so an
// interrupted run can be retried to completion.
type cascadeCoordinator struct {
	BillRepository         contracts.BillRepository
	PatientRepository      contracts.PatientRepository
	PrescriptionRepository contracts.PrescriptionRepository
	Log                    *zap.Logger
}

func NewCascadeCoordinator(
	billRepository contracts.BillRepository,
	patientRepository contracts.PatientRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	logger *zap.Logger,
) contracts.CascadeDeleter {
	return &cascadeCoordinator{
		BillRepository:         billRepository,
		PatientRepository:      patientRepository,
		PrescriptionRepository: prescriptionRepository,
		Log:                    logger,
	}
}

func (c *cascadeCoordinator) DeleteBillCascade(ctx context.Context, billDocID string) (string, error) {
	bill, err := c.BillRepository.FindByID(ctx, billDocID)
	if err != nil {
		return "", err
	}
	if bill == nil {
		return "", exceptions.ErrBillNotExist(nil)
	}

	patientID := bill.PatientID
	deletedPatientName := bill.PatientName
	if patient, err := c.PatientRepository.FindByID(ctx, patientID); err == nil && patient != nil {
		deletedPatientName = patient.Name
	}

	if err := c.BillRepository.DeleteByID(ctx, billDocID); err != nil {
		return "", err
	}

	if err := c.PrescriptionRepository.DeleteAllByPatientID(ctx, patientID); err != nil {
		c.Log.Error("cascade interrupted after bill deletion, retry will complete it",
			zap.String("billId", bill.BillID),
			zap.String("patientId", patientID),
			zap.Error(err),
		)
		return "", err
	}

	if err := c.PatientRepository.DeleteByID(ctx, patientID); err != nil {
		c.Log.Error("cascade interrupted before patient deletion, retry will complete it",
			zap.String("billId", bill.BillID),
			zap.String("patientId", patientID),
			zap.Error(err),
		)
		return "", err
	}

	return deletedPatientName, nil
}
