package responses

import "time"

type NextToken struct {
	Token int `json:"token"`
}

// TokenEntry is one row of the waiting-room token board.
type TokenEntry struct {
	PatientID   string    `json:"id"`
	Name        string    `json:"name"`
	TokenNumber int       `json:"tokenNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}
