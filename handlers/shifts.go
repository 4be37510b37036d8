package handlers

import (
	"encoding/json"
	"net/http"

	"WorkforceBackend/middleware"
)

// GetShifts returns the schedule the caller may see, optionally narrowed to
// one date with ?date=YYYY-MM-DD.
func (a *API) GetShifts(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		respondWithJSON(w, http.StatusOK, a.svc.ShiftsOn(date))
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	shifts, err := a.svc.VisibleShifts(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, shifts)
}

// AssignShift puts a worker on the schedule.
func (a *API) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string `json:"user_id"`
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Position  string `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	shift, err := a.svc.AssignShift(userID, req.UserID, req.Date, req.StartTime, req.EndTime, req.Position)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, shift)
}
