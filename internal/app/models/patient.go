package models

import "time"

type Contact struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

type Visit struct {
	Date           time.Time `json:"date" bson:"date"`
	DoctorID       string    `json:"doctor,omitempty" bson:"doctorId,omitempty"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	PrescriptionID string    `json:"prescription,omitempty" bson:"prescriptionId,omitempty"`
}

type Patient struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name"`
	Age          int     `json:"age" bson:"age"`
	Gender       string  `json:"gender" bson:"gender"`
	Contact      Contact `json:"contact" bson:"contact"`
	TokenNumber  int     `json:"tokenNumber" bson:"tokenNumber"`
	VisitHistory []Visit `json:"visitHistory,omitempty" bson:"visitHistory,omitempty"`
	TimeModel    `bson:",inline"`
}
