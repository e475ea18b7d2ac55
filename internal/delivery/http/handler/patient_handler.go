package handler

import (
	"encoding/json"
	"net/http"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/pagination"
	"clinic-records/pkg/response"
	"clinic-records/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	historyUsecase usecase.HistoryUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(
	patientUsecase usecase.PatientUsecase,
	historyUsecase usecase.HistoryUsecase,
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

// CreatePatient registers a patient owned by the calling doctor
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), auth, &req)
	if err != nil {
		writeError(w, err, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient created successfully", patient)
}

// GetPatient returns a patient with all consultations
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// UpdatePatient applies personal and medical edits
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathUUID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.UpdatePatient(r.Context(), auth, id, &req)
	if err != nil {
		writeError(w, err, "Failed to update patient")
		return
	}

	message := "Patient updated successfully"
	if result.NoChanges {
		message = "No changes detected"
	}

	response.Success(w, http.StatusOK, message, result)
}

// GetHistory lists a patient's consultations
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Router /patients/{id}/historial [get]
func (h *PatientHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	query := dto.HistoryQuery{
		Pagination: pagination.FromRequest(r),
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
	}

	history, err := h.historyUsecase.GetHistory(r.Context(), id, query)
	if err != nil {
		writeError(w, err, "Failed to get consultation history")
		return
	}

	response.Success(w, http.StatusOK, "History retrieved successfully", history)
}

// DeleteConsultation removes one consultation of the patient
// @Param consultationId query string true "Consultation ID"
// @Router /patients/{id}/historial [delete]
func (h *PatientHandler) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathUUID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.historyUsecase.DeleteConsultation(r.Context(), auth, id, r.URL.Query().Get("consultationId")); err != nil {
		writeError(w, err, "Failed to delete consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation deleted successfully", nil)
}
