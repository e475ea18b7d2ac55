package entity

import "github.com/google/uuid"

// AuthContext identifies the authenticated doctor behind a request.
type AuthContext struct {
	DoctorID uuid.UUID
	Email    string
	TokenID  string
}
