package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Cedula    string `json:"cedula" validate:"required,max=50"`
	Age       *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Sex       string `json:"sex" validate:"required,oneof=M F"`
}

// ChangeFlags is the client's own view of what it edited. It is informational only;
// the server recomputes both flags.
type ChangeFlags struct {
	PersonalChanged bool `json:"personalChanged"`
	MedicalChanged  bool `json:"medicalChanged"`
}

type UpdatePatientRequest struct {
	FirstName  string       `json:"firstName" validate:"required,max=100"`
	LastName   string       `json:"lastName" validate:"required,max=100"`
	Cedula     string       `json:"cedula" validate:"required,max=50"`
	Age        *int         `json:"age" validate:"omitempty,gte=0,lte=150"`
	Sex        string       `json:"sex" validate:"required,oneof=M F"`
	Findings   string       `json:"findings"`
	Diagnosis  string       `json:"diagnosis"`
	Treatment  string       `json:"treatment"`
	DoctorID   string       `json:"doctorId" validate:"omitempty,uuid"`
	ActionType string       `json:"actionType" validate:"omitempty,oneof=amend-latest create-new"`
	HasChanges *ChangeFlags `json:"hasChanges,omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Cedula    string    `json:"cedula"`
	Age       *int      `json:"age"`
	Sex       string    `json:"sex"`
	DoctorID  uuid.UUID `json:"doctorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PatientDetailResponse struct {
	PatientResponse
	Consultations []ConsultationResponse `json:"consultations"`
}

type PatientSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type PatientSearchResult struct {
	PatientResponse
	LatestConsultation *ConsultationResponse `json:"latestConsultation"`
}

type UpdateChanges struct {
	PersonalDataUpdated    bool `json:"personalDataUpdated"`
	MedicalDataUpdated     bool `json:"medicalDataUpdated"`
	NewConsultationCreated bool `json:"newConsultationCreated"`
}

type UpdatePatientResponse struct {
	Patient      PatientResponse       `json:"patient"`
	Consultation *ConsultationResponse `json:"consultation"`
	Changes      UpdateChanges         `json:"changes"`
	NoChanges    bool                  `json:"noChanges"`
}
