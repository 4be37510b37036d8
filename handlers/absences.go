package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

// GetAbsences returns the caller's visible absence requests.
func (a *API) GetAbsences(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	absences, err := a.svc.VisibleAbsences(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, absences)
}

// RequestAbsence files an absence request for the caller.
func (a *API) RequestAbsence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type      models.AbsenceType `json:"type"`
		StartDate string             `json:"start_date"`
		EndDate   string             `json:"end_date"`
		Reason    string             `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	request, err := a.svc.RequestAbsence(userID, req.Type, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, request)
}

// DecideAbsence approves or rejects a pending request.
func (a *API) DecideAbsence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Decision models.AbsenceStatus `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	requestID := mux.Vars(r)["id"]

	request, err := a.svc.DecideAbsence(userID, requestID, req.Decision)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, request)
}

// GetOnLeave lists who has an approved absence covering today.
func (a *API) GetOnLeave(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.CurrentlyOnLeave())
}
