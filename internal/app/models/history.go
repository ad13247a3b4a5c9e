package models

import "time"

// PatientSnapshot, BillSnapshot and PrescriptionSnapshot are copies by
// value, not references. The source documents can be edited or deleted
// later; the history record must stay a tamper-stable account of what was
// billed and treated.

type PatientSnapshot struct {
	PatientID   string  `json:"patientId" bson:"patientId"`
	Name        string  `json:"name" bson:"name"`
	Age         int     `json:"age" bson:"age"`
	Gender      string  `json:"gender" bson:"gender"`
	Contact     Contact `json:"contact" bson:"contact"`
	TokenNumber int     `json:"tokenNumber" bson:"tokenNumber"`
}

type BillSnapshot struct {
	BillID      string     `json:"billId" bson:"billId"`
	Amount      float64    `json:"amount" bson:"amount"`
	PaymentDate time.Time  `json:"paymentDate" bson:"paymentDate"`
	Status      BillStatus `json:"status" bson:"status"`
}

type PrescriptionSnapshot struct {
	PrescriptionID string     `json:"prescriptionId" bson:"prescriptionId"`
	Diagnosis      string     `json:"diagnosis" bson:"diagnosis"`
	Medicines      []Medicine `json:"medicines" bson:"medicines"`
	Notes          string     `json:"notes,omitempty" bson:"notes,omitempty"`
	DoctorID       string     `json:"doctor" bson:"doctorId"`
}

// HistoryRecord is immutable once written; nothing in this service updates
// or deletes it.
type HistoryRecord struct {
	ID           string               `json:"id" bson:"_id,omitempty"`
	Patient      PatientSnapshot      `json:"patient" bson:"patient"`
	Bill         BillSnapshot         `json:"bill" bson:"bill"`
	Prescription PrescriptionSnapshot `json:"prescription" bson:"prescription"`
	ArchivedAt   time.Time            `json:"archivedAt" bson:"archivedAt"`
	TimeModel    `bson:",inline"`
}
