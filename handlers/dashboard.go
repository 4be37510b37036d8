package handlers

import (
	"net/http"

	"WorkforceBackend/middleware"
)

// GetDashboardStats returns the manager landing-page counters.
func (a *API) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	stats, err := a.svc.DashboardStats(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
