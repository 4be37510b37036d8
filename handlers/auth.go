package handlers

import (
	"encoding/json"
	"net/http"

	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

type AuthResponse struct {
	Token  string       `json:"token"`
	UserID string       `json:"user_id"`
	Role   string       `json:"role"`
	User   *models.User `json:"user"`
	// PasswordChangeRequired tells the client to route straight to the
	// password screen before anything else.
	PasswordChangeRequired bool `json:"password_change_required"`
}

// ManagerLogin signs in the manager account without credentials.
func (a *API) ManagerLogin(w http.ResponseWriter, r *http.Request) {
	user, err := a.svc.LoginManager()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	a.respondWithSession(w, user)
}

// EmployeeLogin signs in a worker by phone or identity number.
func (a *API) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := a.svc.LoginEmployee(req.Identifier)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	a.respondWithSession(w, user)
}

func (a *API) respondWithSession(w http.ResponseWriter, user *models.User) {
	token, err := middleware.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	respondWithJSON(w, http.StatusOK, AuthResponse{
		Token:                  token,
		UserID:                 user.ID,
		Role:                   string(user.Role),
		User:                   user,
		PasswordChangeRequired: !user.PasswordChanged,
	})
}

// Logout records the sign-out in the session feed.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := a.svc.Logout(userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// ChangePassword handles the forced first-login change.
func (a *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewPassword string `json:"new_password"`
		Confirm     string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := a.svc.ChangePassword(userID, req.NewPassword, req.Confirm); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

// ChangeAccessCode is the settings-screen change; it verifies the current
// code first.
func (a *API) ChangeAccessCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Current     string `json:"current_password"`
		NewPassword string `json:"new_password"`
		Confirm     string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := a.svc.ChangeAccessCode(userID, req.Current, req.NewPassword, req.Confirm); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "access code updated"})
}

// CompleteOnboarding marks the first-run tour as done.
func (a *API) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	if err := a.svc.CompleteOnboarding(userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "onboarded"})
}

// GetMe returns the caller's own account.
func (a *API) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	user, err := a.svc.GetUser(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// GetSessionEvents returns the login/logout audit feed.
func (a *API) GetSessionEvents(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, a.svc.SessionEvents())
}
