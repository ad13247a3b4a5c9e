package contracts

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"context"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	// FindLatestByPatientID returns the most recently created prescription
	// for the patient, or nil when none exists.
	FindLatestByPatientID(ctx context.Context, patientID string) (*models.Prescription, error)
	CountByPatientID(ctx context.Context, patientID string) (int64, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
	DeleteByID(ctx context.Context, prescriptionID string) error
	// DeleteAllByPatientID is a no-op when no prescriptions remain.
	DeleteAllByPatientID(ctx context.Context, patientID string) error
}

type PrescriptionUsecase interface {
	Submit(ctx context.Context, doctor *models.Identity, request *requests.SubmitPrescription) (*models.Prescription, error)
	ListPrescriptions(ctx context.Context) ([]models.Prescription, error)
	GetPrescription(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	UpdatePrescription(ctx context.Context, doctor *models.Identity, prescriptionID string, request *requests.UpdatePrescription) (*models.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error
}
