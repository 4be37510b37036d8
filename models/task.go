package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskPending                TaskStatus = "pending"
	TaskInProgress             TaskStatus = "in_progress"
	TaskSubmitted              TaskStatus = "submitted"
	TaskCompleted              TaskStatus = "completed"
	TaskPendingManagerApproval TaskStatus = "pending_manager_approval"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type ProofType string

const (
	ProofNone  ProofType = "none"
	ProofPhoto ProofType = "photo"
	ProofVideo ProofType = "video"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assigned_to"`
	CreatedBy   string       `json:"created_by"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`

	ProofRequired ProofType `json:"proof_required"`
	// ProofURL is set only when the task transitions into submitted.
	ProofURL string `json:"proof_url,omitempty"`

	// DueDate is a calendar date in YYYY-MM-DD form; string comparison
	// gives chronological order.
	DueDate     string `json:"due_date"`
	IsRecurring bool   `json:"is_recurring"`

	CompletionLocation  *GeoPoint `json:"completion_location,omitempty"`
	CompletionTimestamp string    `json:"completion_timestamp,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewTask(title, description, assignedTo, createdBy string, status TaskStatus, priority TaskPriority, proof ProofType, dueDate string, recurring bool, now time.Time) (*Task, error) {
	if title == "" {
		return nil, errors.New("task title is required")
	}
	if assignedTo == "" {
		return nil, errors.New("task must be assigned to a user")
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if proof == "" {
		proof = ProofNone
	}

	return &Task{
		ID:            uuid.New().String(),
		Title:         title,
		Description:   description,
		AssignedTo:    assignedTo,
		CreatedBy:     createdBy,
		Status:        status,
		Priority:      priority,
		ProofRequired: proof,
		DueDate:       dueDate,
		IsRecurring:   recurring,
		CreatedAt:     now.UTC(),
	}, nil
}

// Transition moves the task to the next status. It is the single authority
// on which moves are legal:
//
//	pending/in_progress      -> submitted   (assignee turns the work in)
//	submitted                -> completed   (manager approval)
//	submitted                -> pending     (manager rejection)
//	pending_manager_approval -> pending     (manager approves creation)
//
// Everything else is rejected, so a task can never reach completed without
// passing through submitted.
func (t *Task) Transition(next TaskStatus) error {
	switch {
	case (t.Status == TaskPending || t.Status == TaskInProgress) && next == TaskSubmitted:
	case t.Status == TaskSubmitted && next == TaskCompleted:
	case t.Status == TaskSubmitted && next == TaskPending:
	case t.Status == TaskPendingManagerApproval && next == TaskPending:
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
	}
	t.Status = next
	return nil
}

// Terminal statuses are excluded from the day-partitioned task feeds.
func (t *Task) InDatedFeed() bool {
	return t.Status != TaskCompleted && t.Status != TaskPendingManagerApproval
}
