package core

import (
	"errors"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// AssignShift puts a worker on the schedule. Manager only; managers do not
// appear on the schedule themselves.
func (s *Service) AssignShift(managerID, userID, date, startTime, endTime, position string) (*models.Shift, error) {
	if date == "" || startTime == "" || endTime == "" {
		return nil, errors.New("shift date, start and end times are required")
	}
	if startTime >= endTime {
		return nil, errors.New("shift must end after it starts")
	}
	var out *models.Shift

	err := s.store.Update(func(st *store.AppState) error {
		caller := st.UserByID(managerID)
		if caller == nil {
			return ErrNotFound
		}
		if caller.Role != models.RoleManager {
			return ErrNotPermitted
		}
		target := st.UserByID(userID)
		if target == nil {
			return ErrNotFound
		}
		if target.Role == models.RoleManager {
			return ErrNotPermitted
		}

		shift := models.NewShift(userID, date, startTime, endTime, position)
		st.Shifts = append(st.Shifts, shift)
		snapshot := *shift
		out = &snapshot
		return nil
	})
	return out, err
}

// VisibleShifts returns the schedule the user may see: managers and
// supervisors the whole roster, employees their own shifts.
func (s *Service) VisibleShifts(userID string) ([]models.Shift, error) {
	var out []models.Shift
	var fail error

	s.store.View(func(st *store.AppState) {
		u := st.UserByID(userID)
		if u == nil {
			fail = ErrNotFound
			return
		}
		for _, sh := range st.Shifts {
			if u.Role == models.RoleEmployee && sh.UserID != userID {
				continue
			}
			out = append(out, *sh)
		}
	})
	return out, fail
}

// ShiftsOn returns every shift scheduled for the date.
func (s *Service) ShiftsOn(date string) []models.Shift {
	var out []models.Shift
	s.store.View(func(st *store.AppState) {
		for _, sh := range st.Shifts {
			if sh.Date == date {
				out = append(out, *sh)
			}
		}
	})
	return out
}
