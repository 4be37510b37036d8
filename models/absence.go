package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type AbsenceType string

const (
	AbsenceVacation AbsenceType = "vacation"
	AbsenceSick     AbsenceType = "sick"
	AbsenceOther    AbsenceType = "other"
)

func (t AbsenceType) Valid() bool {
	switch t {
	case AbsenceVacation, AbsenceSick, AbsenceOther:
		return true
	}
	return false
}

type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceRejected AbsenceStatus = "rejected"
)

var ErrAlreadyDecided = errors.New("absence request already decided")

// AbsenceRequest is a two-stage approval record. Dates are YYYY-MM-DD.
type AbsenceRequest struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Type      AbsenceType   `json:"type"`
	Status    AbsenceStatus `json:"status"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Reason    string        `json:"reason"`
}

func NewAbsenceRequest(userID string, absType AbsenceType, startDate, endDate, reason string) (*AbsenceRequest, error) {
	if !absType.Valid() {
		return nil, fmt.Errorf("invalid absence type %q", absType)
	}
	if startDate == "" || endDate == "" {
		return nil, errors.New("start and end dates are required")
	}
	if startDate > endDate {
		return nil, errors.New("start date must not be after end date")
	}

	return &AbsenceRequest{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      absType,
		Status:    AbsencePending,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	}, nil
}

// Decide resolves a pending request. Decisions are terminal: a request that
// was already approved or rejected cannot be re-decided or reopened.
func (a *AbsenceRequest) Decide(status AbsenceStatus) error {
	if status != AbsenceApproved && status != AbsenceRejected {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, status)
	}
	if a.Status != AbsencePending {
		return ErrAlreadyDecided
	}
	a.Status = status
	return nil
}

// Covers reports whether the request spans the given date.
func (a *AbsenceRequest) Covers(date string) bool {
	return a.StartDate <= date && date <= a.EndDate
}
