package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// DoctorSummary is the doctor annotation attached to consultations.
type DoctorSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
