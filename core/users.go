package core

import (
	"fmt"
	"math/rand"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// UserInput carries the fields supplied when a manager creates an account.
type UserInput struct {
	Name     string      `json:"name"`
	LastName string      `json:"last_name"`
	TZ       string      `json:"tz"`
	Phone    string      `json:"phone"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// ListUsers returns every account. Capability gating happens at the route.
func (s *Service) ListUsers() []models.User {
	var out []models.User
	s.store.View(func(st *store.AppState) {
		for _, u := range st.Users {
			out = append(out, *u)
		}
	})
	return out
}

// GetUser returns one account by id.
func (s *Service) GetUser(id string) (*models.User, error) {
	var out *models.User
	s.store.View(func(st *store.AppState) {
		if u := st.UserByID(id); u != nil {
			snapshot := *u
			out = &snapshot
		}
	})
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

// CreateUser provisions an account with a generated four-digit access code.
// The code is returned once so the manager can hand it over; after that it
// is only visible as the account's first-time password. Manager only.
func (s *Service) CreateUser(managerID string, in UserInput) (*models.User, string, error) {
	now := s.clock.Now()
	code := fmt.Sprintf("%d", 1000+rand.Intn(9000))
	var out *models.User

	err := s.store.Update(func(st *store.AppState) error {
		caller := st.UserByID(managerID)
		if caller == nil {
			return ErrNotFound
		}
		if caller.Role != models.RoleManager {
			return ErrNotPermitted
		}

		u, err := models.NewUser(in.Name, in.LastName, in.TZ, in.Phone, in.Email, code, in.Role, now)
		if err != nil {
			return err
		}
		if u.Role != models.RoleManager && s.opts.NewUserSecurityView {
			perms := models.DefaultPermissions(u.Role)
			perms.ViewSecurity = true
			u.Permissions = &perms
		}

		st.Users = append(st.Users, u)
		snapshot := *u
		out = &snapshot
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return out, code, nil
}

// SetPermission grants or revokes a single view capability on the target
// account. The first override materializes the role defaults so the other
// capabilities keep their current values. Manager only.
func (s *Service) SetPermission(managerID, targetID, viewID string, allowed bool) (*models.User, error) {
	var out *models.User

	err := s.store.Update(func(st *store.AppState) error {
		caller := st.UserByID(managerID)
		if caller == nil {
			return ErrNotFound
		}
		if caller.Role != models.RoleManager {
			return ErrNotPermitted
		}
		target := st.UserByID(targetID)
		if target == nil {
			return ErrNotFound
		}

		perms := models.ResolvePermissions(target)
		if err := perms.Set(viewID, allowed); err != nil {
			return err
		}
		target.Permissions = &perms

		snapshot := *target
		out = &snapshot
		return nil
	})
	return out, err
}

// SetAssignGrant toggles whether a supervisor may create tasks. Manager
// only, and only meaningful on supervisor accounts.
func (s *Service) SetAssignGrant(managerID, targetID string, allowed bool) (*models.User, error) {
	var out *models.User

	err := s.store.Update(func(st *store.AppState) error {
		caller := st.UserByID(managerID)
		if caller == nil {
			return ErrNotFound
		}
		if caller.Role != models.RoleManager {
			return ErrNotPermitted
		}
		target := st.UserByID(targetID)
		if target == nil {
			return ErrNotFound
		}
		if target.Role != models.RoleSupervisor {
			return ErrNotPermitted
		}
		target.CanAssignTasks = allowed

		snapshot := *target
		out = &snapshot
		return nil
	})
	return out, err
}
