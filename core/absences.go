package core

import (
	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// RequestAbsence files an absence request for the caller. Managers do not
// request absences; they decide them.
func (s *Service) RequestAbsence(userID string, absType models.AbsenceType, startDate, endDate, reason string) (*models.AbsenceRequest, error) {
	var out *models.AbsenceRequest

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		if u.Role == models.RoleManager {
			return ErrNotPermitted
		}
		req, err := models.NewAbsenceRequest(userID, absType, startDate, endDate, reason)
		if err != nil {
			return err
		}
		st.Absences = append(st.Absences, req)
		snapshot := *req
		out = &snapshot
		return nil
	})
	return out, err
}

// DecideAbsence approves or rejects a pending request. Manager only, and
// the decision is final.
func (s *Service) DecideAbsence(managerID, requestID string, decision models.AbsenceStatus) (*models.AbsenceRequest, error) {
	var out *models.AbsenceRequest

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(managerID)
		if u == nil {
			return ErrNotFound
		}
		if u.Role != models.RoleManager {
			return ErrNotPermitted
		}
		req := st.AbsenceByID(requestID)
		if req == nil {
			return ErrNotFound
		}
		if err := req.Decide(decision); err != nil {
			return err
		}
		snapshot := *req
		out = &snapshot
		return nil
	})
	return out, err
}

// VisibleAbsences returns the caller's own requests, or every request when
// the caller is a manager.
func (s *Service) VisibleAbsences(userID string) ([]models.AbsenceRequest, error) {
	var out []models.AbsenceRequest
	var fail error

	s.store.View(func(st *store.AppState) {
		u := st.UserByID(userID)
		if u == nil {
			fail = ErrNotFound
			return
		}
		for _, a := range st.Absences {
			if u.Role != models.RoleManager && a.UserID != userID {
				continue
			}
			out = append(out, *a)
		}
	})
	return out, fail
}

// CurrentlyOnLeave lists the users with an approved absence covering today.
func (s *Service) CurrentlyOnLeave() []models.User {
	today := dateOf(s.clock.Now())
	var out []models.User

	s.store.View(func(st *store.AppState) {
		seen := make(map[string]bool)
		for _, a := range st.Absences {
			if a.Status != models.AbsenceApproved || !a.Covers(today) || seen[a.UserID] {
				continue
			}
			if u := st.UserByID(a.UserID); u != nil {
				seen[a.UserID] = true
				out = append(out, *u)
			}
		}
	})
	return out
}
