package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"WorkforceBackend/core"
	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
)

// GetTasks returns the caller's visible tasks, optionally narrowed with
// ?filter=today|future|completed|pending_approval.
func (a *API) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	filter := r.URL.Query().Get("filter")

	tasks, err := a.svc.FilterTasks(userID, filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

// CreateTask creates a task from the caller.
func (a *API) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in core.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	task, err := a.svc.CreateTask(userID, in)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, task)
}

// SubmitTask turns in the assignee's work, with optional proof and location.
func (a *API) SubmitTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProofURL string           `json:"proof_url"`
		Location *models.GeoPoint `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	taskID := mux.Vars(r)["id"]

	task, err := a.svc.SubmitTask(userID, taskID, req.ProofURL, req.Location)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, task)
}

// ApproveTask accepts a submitted task.
func (a *API) ApproveTask(w http.ResponseWriter, r *http.Request) {
	a.reviewTask(w, r, a.svc.ApproveTask)
}

// RejectTask sends a submitted task back to pending.
func (a *API) RejectTask(w http.ResponseWriter, r *http.Request) {
	a.reviewTask(w, r, a.svc.RejectTask)
}

// ApproveCreation releases a supervisor-created task into pending.
func (a *API) ApproveCreation(w http.ResponseWriter, r *http.Request) {
	a.reviewTask(w, r, a.svc.ApproveCreation)
}

func (a *API) reviewTask(w http.ResponseWriter, r *http.Request, review func(managerID, taskID string) (*models.Task, error)) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	taskID := mux.Vars(r)["id"]

	task, err := review(userID, taskID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, task)
}
