package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationFilter is a domain-level filter for listing a patient's consultations.
// Bounds are inclusive and compared against CreatedAt.
type ConsultationFilter struct {
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

// PatientSearch is a domain-level filter for the patient search.
type PatientSearch struct {
	Query    string
	DoctorID *uuid.UUID // restricts results to one owner when set
	Limit    int
}
