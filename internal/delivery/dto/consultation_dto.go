package dto

import (
	"time"

	"clinic-records/pkg/pagination"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConsultationRequest struct {
	PatientID string `json:"patientId" validate:"required,uuid"`
	Findings  string `json:"findings"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
}

// HistoryQuery carries the raw date filters; dates use YYYY-MM-DD.
type HistoryQuery struct {
	Pagination pagination.Params
	StartDate  string
	EndDate    string
}

// Response DTOs

type ConsultationResponse struct {
	ID        uuid.UUID      `json:"id"`
	PatientID uuid.UUID      `json:"patientId"`
	DoctorID  uuid.UUID      `json:"doctorId"`
	Findings  string         `json:"findings"`
	Diagnosis string         `json:"diagnosis"`
	Treatment string         `json:"treatment"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Doctor    *DoctorSummary `json:"doctor,omitempty"`
}

type HistoryResponse struct {
	Patient       PatientSummary         `json:"patient"`
	Consultations []ConsultationResponse `json:"consultations"`
	Pagination    pagination.Meta        `json:"pagination"`
}

type RecentPatient struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       *int      `json:"age"`
	Sex       string    `json:"sex"`
	Cedula    string    `json:"cedula"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RecentActivityResponse struct {
	ID        uuid.UUID     `json:"id"`
	PatientID uuid.UUID     `json:"patientId"`
	Diagnosis string        `json:"diagnosis"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Patient   RecentPatient `json:"patient"`
}
