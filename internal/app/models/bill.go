package models

import "time"

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusFailed  BillStatus = "failed"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusFailed:
		return true
	}
	return false
}

type Bill struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	BillID    string     `json:"billId" bson:"billId"`
	Amount    float64    `json:"amount" bson:"amount"`
	IssueDate time.Time  `json:"issueDate" bson:"issueDate"`
	Status    BillStatus `json:"status" bson:"status"`
	PatientID string     `json:"patient" bson:"patientId"`
	// PatientName is denormalized at creation time so the bill stays
	// readable after later patient edits.
	PatientName string `json:"patientName" bson:"patientName"`
	TimeModel   `bson:",inline"`
}
