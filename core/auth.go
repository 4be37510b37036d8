package core

import (
	"fmt"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// LoginManager is the manager fast path: it signs in the first manager
// account without any credential check. The login lands in the session feed.
func (s *Service) LoginManager() (*models.User, error) {
	now := s.clock.Now()
	var out *models.User

	err := s.store.Update(func(st *store.AppState) error {
		mgr := st.FirstManager()
		if mgr == nil {
			return fmt.Errorf("%w: no manager account", ErrNotFound)
		}
		st.PushSessionEvent(models.NewConnectionEvent(mgr, models.EventLogin, stampOf(now), nil))
		snapshot := *mgr
		out = &snapshot
		return nil
	})
	return out, err
}

// LoginEmployee signs in the first non-manager whose phone or identity
// number equals the identifier. No password is checked at this stage; the
// password gate catches accounts that still carry their first-time code.
func (s *Service) LoginEmployee(identifier string) (*models.User, error) {
	if identifier == "" {
		return nil, ErrBadCredentials
	}
	now := s.clock.Now()
	var out *models.User

	err := s.store.Update(func(st *store.AppState) error {
		u := st.UserByIdentifier(identifier)
		if u == nil {
			return ErrBadCredentials
		}
		st.PushSessionEvent(models.NewConnectionEvent(u, models.EventLogin, stampOf(now), nil))
		snapshot := *u
		out = &snapshot
		return nil
	})
	return out, err
}

// Logout records the logout in the session feed. An unknown user id is an
// error; a logout without a prior login is not.
func (s *Service) Logout(userID string) error {
	now := s.clock.Now()
	return s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		st.PushSessionEvent(models.NewConnectionEvent(u, models.EventLogout, stampOf(now), nil))
		return nil
	})
}

// ChangePassword sets a new password after validating the policy: at least
// four characters and a matching confirmation. It clears the first-login
// requirement.
func (s *Service) ChangePassword(userID, newPassword, confirm string) error {
	if len(newPassword) < 4 || newPassword != confirm {
		return ErrPasswordPolicy
	}
	return s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		u.Password = newPassword
		u.PasswordChanged = true
		return nil
	})
}

// ChangeAccessCode is the settings-screen variant of a password change: the
// caller must supply their current code before picking a new one. It leaves
// the first-login state alone.
func (s *Service) ChangeAccessCode(userID, current, newPassword, confirm string) error {
	if len(newPassword) < 4 || newPassword != confirm {
		return ErrPasswordPolicy
	}
	return s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		if u.Password != current {
			return ErrPasswordMismatch
		}
		u.Password = newPassword
		return nil
	})
}

// CompleteOnboarding marks the user as having finished the first-run tour.
func (s *Service) CompleteOnboarding(userID string) error {
	return s.store.Update(func(st *store.AppState) error {
		u := st.UserByID(userID)
		if u == nil {
			return ErrNotFound
		}
		u.Onboarded = true
		return nil
	})
}

// SessionEvents returns the login/logout feed, most recent first.
func (s *Service) SessionEvents() []models.ConnectionEvent {
	var out []models.ConnectionEvent
	s.store.View(func(st *store.AppState) {
		out = append(out, st.SessionEvents...)
	})
	return out
}
