package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"WorkforceBackend/core"
	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

// GetUsers returns every account.
func (a *API) GetUsers(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.ListUsers())
}

// GetUser returns one account by id.
func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.svc.GetUser(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// CreateUser provisions an account and returns its one-time access code.
func (a *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in core.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	user, code, err := a.svc.CreateUser(userID, in)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"user":        user,
		"access_code": code,
	})
}

// SetPermission grants or revokes one view capability on a user.
func (a *API) SetPermission(w http.ResponseWriter, r *http.Request) {
	var req struct {
		View    string `json:"view"`
		Allowed bool   `json:"allowed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	targetID := mux.Vars(r)["id"]

	user, err := a.svc.SetPermission(userID, targetID, req.View, req.Allowed)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// SetAssignGrant toggles a supervisor's task assignment grant.
func (a *API) SetAssignGrant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Allowed bool `json:"allowed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	targetID := mux.Vars(r)["id"]

	user, err := a.svc.SetAssignGrant(userID, targetID, req.Allowed)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// GetPermissions returns the target's resolved capability set.
func (a *API) GetPermissions(w http.ResponseWriter, r *http.Request) {
	user, err := a.svc.GetUser(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.ResolvePermissions(user))
}
