package models

type Medicine struct {
	Name      string `json:"name" bson:"name"`
	Dosage    string `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty" bson:"duration,omitempty"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Prescription struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	PatientID   string     `json:"patient" bson:"patientId"`
	PatientName string     `json:"patientName" bson:"patientName"`
	DoctorID    string     `json:"doctor" bson:"doctorId"`
	Diagnosis   string     `json:"diagnosis" bson:"diagnosis"`
	Medicines   []Medicine `json:"medicines" bson:"medicines"`
	Notes       string     `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel   `bson:",inline"`
}
