package requests

type ContactPayload struct {
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

type RegisterPatient struct {
	Name    string         `json:"name" validate:"required,max=200"`
	Age     int            `json:"age" validate:"required,gt=0"`
	Gender  string         `json:"gender" validate:"required,gender"`
	Contact ContactPayload `json:"contact"`
	// TokenNumber zero means the server derives the next queue token.
	TokenNumber int `json:"tokenNumber" validate:"omitempty,gte=1"`
}

type UpdatePatient struct {
	Name    *string         `json:"name" validate:"omitempty,max=200"`
	Age     *int            `json:"age" validate:"omitempty,gt=0"`
	Gender  *string         `json:"gender" validate:"omitempty,gender"`
	Contact *ContactPayload `json:"contact"`
}
