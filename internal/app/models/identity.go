package models

// Identity is the verified user extracted from the bearer token by the
// authentication middleware.
type Identity struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
}
