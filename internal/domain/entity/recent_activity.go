package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecentActivity is one row of the per-patient latest consultation ranking.
type RecentActivity struct {
	ConsultationID        uuid.UUID
	PatientID             uuid.UUID
	Diagnosis             string
	ConsultationCreatedAt time.Time
	ConsultationUpdatedAt time.Time
	FirstName             string
	LastName              string
	Age                   *int
	Sex                   string
	Cedula                string
	PatientCreatedAt      time.Time
	PatientUpdatedAt      time.Time
}
