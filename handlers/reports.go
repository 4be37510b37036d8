package handlers

import (
	"encoding/json"
	"net/http"

	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

// GetReports returns the caller's visible issue reports.
func (a *API) GetReports(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	reports, err := a.svc.ListReports(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reports)
}

// CreateReport files an issue report from the caller.
func (a *API) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type        models.ReportType `json:"type"`
		Description string            `json:"description"`
		TargetName  string            `json:"target_name"`
		Severity    models.Severity   `json:"severity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	report, err := a.svc.CreateReport(userID, req.Type, req.Description, req.TargetName, req.Severity)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, report)
}

// GetCriticalReports returns the dashboard's highlighted reports.
func (a *API) GetCriticalReports(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.CriticalReports())
}
