package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to ConsultationResponse DTO.
// The doctor annotation is set only when the Doctor relation was loaded.
func ConsultationToResponse(c *entity.Consultation) *dto.ConsultationResponse {
	if c == nil {
		return nil
	}

	return &dto.ConsultationResponse{
		ID:        c.ID,
		PatientID: c.PatientID,
		DoctorID:  c.DoctorID,
		Findings:  c.Findings,
		Diagnosis: c.Diagnosis,
		Treatment: c.Treatment,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Doctor:    DoctorToSummary(c.Doctor),
	}
}

func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i := range consultations {
		responses[i] = *ConsultationToResponse(&consultations[i])
	}
	return responses
}

func RecentActivitiesToResponses(activities []entity.RecentActivity) []dto.RecentActivityResponse {
	responses := make([]dto.RecentActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = dto.RecentActivityResponse{
			ID:        a.ConsultationID,
			PatientID: a.PatientID,
			Diagnosis: a.Diagnosis,
			CreatedAt: a.ConsultationCreatedAt,
			UpdatedAt: a.ConsultationUpdatedAt,
			Patient: dto.RecentPatient{
				ID:        a.PatientID,
				FirstName: a.FirstName,
				LastName:  a.LastName,
				Age:       a.Age,
				Sex:       a.Sex,
				Cedula:    a.Cedula,
				CreatedAt: a.PatientCreatedAt,
				UpdatedAt: a.PatientUpdatedAt,
			},
		}
	}
	return responses
}
