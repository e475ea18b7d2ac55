package handler

import (
	"net/http"

	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/response"
)

// DashboardHandler serves the read-only dashboard widgets: recent activity and search.
type DashboardHandler struct {
	recentActivityUsecase usecase.RecentActivityUsecase
	searchUsecase         usecase.SearchUsecase
}

func NewDashboardHandler(recentActivityUsecase usecase.RecentActivityUsecase, searchUsecase usecase.SearchUsecase) *DashboardHandler {
	return &DashboardHandler{
		recentActivityUsecase: recentActivityUsecase,
		searchUsecase:         searchUsecase,
	}
}

// GetRecents returns the doctor's most recently treated patients
// @Param doctorId query string true "Doctor ID"
// @Router /recents [get]
func (h *DashboardHandler) GetRecents(w http.ResponseWriter, r *http.Request) {
	recents, err := h.recentActivityUsecase.GetRecentActivity(r.Context(), r.URL.Query().Get("doctorId"))
	if err != nil {
		writeError(w, err, "Failed to get recent activity")
		return
	}

	response.Success(w, http.StatusOK, "Recent activity retrieved successfully", recents)
}

// Search looks patients up by name or cedula
// @Param query query string true "Search text"
// @Router /search [get]
func (h *DashboardHandler) Search(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	results, err := h.searchUsecase.SearchPatients(r.Context(), auth, r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err, "Failed to search patients")
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", results)
}
