package handlers

import (
	"encoding/json"
	"net/http"

	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

type clockRequest struct {
	Location *models.GeoPoint `json:"location"`
}

type stationRequest struct {
	UserID   string           `json:"user_id"`
	Location *models.GeoPoint `json:"location"`
}

// ClockIn opens today's entry for the signed-in caller.
func (a *API) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	entry, err := a.svc.ClockIn(userID, req.Location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry)
}

// ClockOut closes the caller's open entry.
func (a *API) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req clockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	entry, err := a.svc.ClockOut(userID, req.Location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entry)
}

// StationClockIn clocks a selected worker in from the manager dashboard.
func (a *API) StationClockIn(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	notice, err := a.svc.StationClockIn(req.UserID, req.Location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, notice)
}

// StationClockOut clocks a selected worker out from the manager dashboard.
func (a *API) StationClockOut(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	notice, err := a.svc.StationClockOut(req.UserID, req.Location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, notice)
}

// GetAttendanceLog returns every time entry. Manager only.
func (a *API) GetAttendanceLog(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	entries, err := a.svc.AttendanceLog(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// GetMyEntries returns the caller's own time entries.
func (a *API) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	respondWithJSON(w, http.StatusOK, a.svc.MyEntries(userID))
}

// GetClockEvents returns the station clock feed.
func (a *API) GetClockEvents(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.ClockEvents())
}

// EmailAttendanceReport composes today's attendance summary email.
func (a *API) EmailAttendanceReport(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := a.svc.EmailAttendanceReport(userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "report sent"})
}
