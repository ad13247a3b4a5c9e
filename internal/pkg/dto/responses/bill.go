package responses

import "clinicdesk-service/internal/app/models"

// BillWithPatient mirrors the list/detail payloads where the bill carries
// its patient document when the patient still exists.
type BillWithPatient struct {
	models.Bill
	Patient *models.Patient `json:"patientDetail,omitempty"`
}

type DeletedBill struct {
	DeletedPatient string `json:"deletedPatient"`
}
