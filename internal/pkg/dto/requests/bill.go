package requests

type CreateBill struct {
	PatientID string  `json:"patient" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// UpdateBill is a partial patch; nil fields are left untouched.
type UpdateBill struct {
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Status      *string  `json:"status" validate:"omitempty,bill_status"`
	PatientName *string  `json:"patientName" validate:"omitempty,max=200"`
}

type UpsertBill struct {
	PatientID string  `json:"patient" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}
