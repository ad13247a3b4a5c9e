package requests

type MedicinePayload struct {
	Name      string `json:"name" validate:"required,max=200"`
	Dosage    string `json:"dosage" validate:"omitempty,max=100"`
	Frequency string `json:"frequency" validate:"omitempty,max=100"`
	Duration  string `json:"duration" validate:"omitempty,max=100"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

type SubmitPrescription struct {
	PatientID string            `json:"patient" validate:"required"`
	Diagnosis string            `json:"diagnosis" validate:"required,max=1000"`
	Medicines []MedicinePayload `json:"medicines" validate:"required,min=1,dive"`
	Notes     string            `json:"notes" validate:"omitempty,max=2000"`
}

type UpdatePrescription struct {
	Diagnosis *string           `json:"diagnosis" validate:"omitempty,max=1000"`
	Medicines []MedicinePayload `json:"medicines" validate:"omitempty,min=1,dive"`
	Notes     *string           `json:"notes" validate:"omitempty,max=2000"`
}
