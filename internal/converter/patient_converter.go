package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Cedula:    patient.Cedula,
		Age:       patient.Age,
		Sex:       patient.Sex,
		DoctorID:  patient.DoctorID,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

func PatientToSummary(patient *entity.Patient) dto.PatientSummary {
	return dto.PatientSummary{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
	}
}

// PatientToDetailResponse includes the patient's consultations in the order they were loaded.
func PatientToDetailResponse(patient *entity.Patient) *dto.PatientDetailResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientDetailResponse{
		PatientResponse: *PatientToResponse(patient),
		Consultations:   ConsultationsToResponses(patient.Consultations),
	}
}

// PatientsToSearchResults pairs every patient with its latest consultation, if any.
func PatientsToSearchResults(patients []entity.Patient, latest map[uuid.UUID]entity.Consultation) []dto.PatientSearchResult {
	results := make([]dto.PatientSearchResult, len(patients))
	for i := range patients {
		results[i] = dto.PatientSearchResult{
			PatientResponse: *PatientToResponse(&patients[i]),
		}
		if c, ok := latest[patients[i].ID]; ok {
			results[i].LatestConsultation = ConsultationToResponse(&c)
		}
	}
	return results
}
