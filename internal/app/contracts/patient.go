package contracts

import (
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"context"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	// FindHighestTokenNumber returns 0 when no patients exist.
	FindHighestTokenNumber(ctx context.Context) (int, error)
	FindAllByTokenOrder(ctx context.Context) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	// DeleteByID is a no-op when the patient is already gone.
	DeleteByID(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	Register(ctx context.Context, request *requests.RegisterPatient) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	// DeletePatient refuses with a conflict when any prescription
	// references the patient.
	DeletePatient(ctx context.Context, patientID string) error
}
