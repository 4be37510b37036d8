package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleManager    Role = "MANAGER"
	RoleSupervisor Role = "SUPERVISOR"
	RoleEmployee   Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleSupervisor, RoleEmployee:
		return true
	}
	return false
}

// View capability identifiers. These are the only ids the evaluator knows;
// anything else resolves to "not visible".
const (
	ViewDashboard  = "dashboard"
	ViewTasks      = "tasks"
	ViewAttendance = "attendance"
	ViewSchedule   = "schedule"
	ViewReporting  = "reporting"
	ViewInventory  = "inventory"
	ViewOrders     = "orders"
	ViewAbsences   = "absences"
	ViewUsers      = "users"
	ViewSecurity   = "security"
)

// PermissionSet is the fixed record of view capabilities governing which
// screens a user may open. Adding or removing a capability is a compile-time
// change, not a map key.
type PermissionSet struct {
	ViewDashboard  bool `json:"view_dashboard"`
	ViewTasks      bool `json:"view_tasks"`
	ViewAttendance bool `json:"view_attendance"`
	ViewSchedule   bool `json:"view_schedule"`
	ViewReporting  bool `json:"view_reporting"`
	ViewInventory  bool `json:"view_inventory"`
	ViewOrders     bool `json:"view_orders"`
	ViewAbsences   bool `json:"view_absences"`
	ViewUsers      bool `json:"view_users"`
	ViewSecurity   bool `json:"view_security"`
}

// DefaultPermissions returns the role's default capability set. An unknown
// role gets the employee defaults.
func DefaultPermissions(role Role) PermissionSet {
	switch role {
	case RoleManager:
		return PermissionSet{
			ViewDashboard: true, ViewTasks: true, ViewAttendance: true,
			ViewSchedule: true, ViewReporting: true, ViewInventory: true,
			ViewOrders: true, ViewAbsences: true, ViewUsers: true,
			ViewSecurity: true,
		}
	case RoleSupervisor:
		return PermissionSet{
			ViewDashboard: true, ViewTasks: true, ViewAttendance: true,
			ViewSchedule: true, ViewReporting: true, ViewInventory: true,
			ViewOrders: false, ViewAbsences: true, ViewUsers: false,
			ViewSecurity: true,
		}
	default:
		return PermissionSet{
			ViewDashboard: false, ViewTasks: true, ViewAttendance: true,
			ViewSchedule: true, ViewReporting: false, ViewInventory: false,
			ViewOrders: false, ViewAbsences: true, ViewUsers: false,
			ViewSecurity: false,
		}
	}
}

// Get reports whether the named capability is granted. Unknown ids are
// always denied.
func (p PermissionSet) Get(viewID string) bool {
	switch viewID {
	case ViewDashboard:
		return p.ViewDashboard
	case ViewTasks:
		return p.ViewTasks
	case ViewAttendance:
		return p.ViewAttendance
	case ViewSchedule:
		return p.ViewSchedule
	case ViewReporting:
		return p.ViewReporting
	case ViewInventory:
		return p.ViewInventory
	case ViewOrders:
		return p.ViewOrders
	case ViewAbsences:
		return p.ViewAbsences
	case ViewUsers:
		return p.ViewUsers
	case ViewSecurity:
		return p.ViewSecurity
	}
	return false
}

// Set grants or revokes the named capability.
func (p *PermissionSet) Set(viewID string, allowed bool) error {
	switch viewID {
	case ViewDashboard:
		p.ViewDashboard = allowed
	case ViewTasks:
		p.ViewTasks = allowed
	case ViewAttendance:
		p.ViewAttendance = allowed
	case ViewSchedule:
		p.ViewSchedule = allowed
	case ViewReporting:
		p.ViewReporting = allowed
	case ViewInventory:
		p.ViewInventory = allowed
	case ViewOrders:
		p.ViewOrders = allowed
	case ViewAbsences:
		p.ViewAbsences = allowed
	case ViewUsers:
		p.ViewUsers = allowed
	case ViewSecurity:
		p.ViewSecurity = allowed
	default:
		return fmt.Errorf("unknown capability %q", viewID)
	}
	return nil
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	// TZ is the internal identity number; together with Phone it is a
	// valid login identifier for non-manager accounts.
	TZ    string `json:"tz"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	Onboarded bool `json:"onboarded"`

	Password string `json:"-"`
	// FirstTimePassword is the code issued at creation, kept as a
	// historical record even after the user picks their own password.
	FirstTimePassword string `json:"-"`
	PasswordChanged   bool   `json:"password_changed"`

	// CanAssignTasks is only meaningful for supervisors.
	CanAssignTasks bool `json:"can_assign_tasks"`

	// Permissions overrides the role defaults when present.
	Permissions *PermissionSet `json:"permissions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ResolvePermissions returns the user's override when one exists, otherwise
// the role defaults in full.
func ResolvePermissions(u *User) PermissionSet {
	if u.Permissions != nil {
		return *u.Permissions
	}
	return DefaultPermissions(u.Role)
}

// CanView is the single authorization check for view capabilities. It fails
// closed: unknown view ids are denied for every role.
func CanView(u *User, viewID string) bool {
	return ResolvePermissions(u).Get(viewID)
}

func NewUser(name, lastName, tz, phone, email, password string, role Role, now time.Time) (*User, error) {
	if name == "" || lastName == "" {
		return nil, errors.New("invalid user details: name and last name are required")
	}
	if !role.Valid() {
		return nil, errors.New("invalid role")
	}
	if email == "" {
		email = fmt.Sprintf("user_%d@bt.local", now.UnixMilli())
	}

	return &User{
		ID:                uuid.New().String(),
		Name:              name,
		LastName:          lastName,
		TZ:                tz,
		Phone:             phone,
		Email:             email,
		Role:              role,
		Onboarded:         false,
		Password:          password,
		FirstTimePassword: password,
		PasswordChanged:   false,
		CanAssignTasks:    role == RoleSupervisor,
		CreatedAt:         now.UTC(),
	}, nil
}

// FullName is the display name used in audit events and notices.
func (u *User) FullName() string {
	return u.Name + " " + u.LastName
}
