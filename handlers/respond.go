package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"WorkforceBackend/core"
	"WorkforceBackend/models"
)

// API exposes the HTTP surface over the core service.
type API struct {
	svc *core.Service
}

func NewAPI(svc *core.Service) *API {
	return &API{svc: svc}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithServiceError maps service sentinels onto HTTP statuses. Errors
// without a mapping are treated as bad requests.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrNoOpenEntry):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrNotPermitted):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, core.ErrBadCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrAlreadyDecided),
		errors.Is(err, core.ErrAlreadyClockedIn):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusBadRequest, err.Error())
	}
}
