package models

import (
	"testing"
	"time"
)

var allViews = []string{
	ViewDashboard, ViewTasks, ViewAttendance, ViewSchedule, ViewReporting,
	ViewInventory, ViewOrders, ViewAbsences, ViewUsers, ViewSecurity,
}

func TestDefaultPermissionTables(t *testing.T) {
	want := map[Role]map[string]bool{
		RoleManager: {
			ViewDashboard: true, ViewTasks: true, ViewAttendance: true,
			ViewSchedule: true, ViewReporting: true, ViewInventory: true,
			ViewOrders: true, ViewAbsences: true, ViewUsers: true,
			ViewSecurity: true,
		},
		RoleSupervisor: {
			ViewDashboard: true, ViewTasks: true, ViewAttendance: true,
			ViewSchedule: true, ViewReporting: true, ViewInventory: true,
			ViewOrders: false, ViewAbsences: true, ViewUsers: false,
			ViewSecurity: true,
		},
		RoleEmployee: {
			ViewDashboard: false, ViewTasks: true, ViewAttendance: true,
			ViewSchedule: true, ViewReporting: false, ViewInventory: false,
			ViewOrders: false, ViewAbsences: true, ViewUsers: false,
			ViewSecurity: false,
		},
	}

	for role, table := range want {
		perms := DefaultPermissions(role)
		for _, view := range allViews {
			if got := perms.Get(view); got != table[view] {
				t.Errorf("%s %s = %v, want %v", role, view, got, table[view])
			}
		}
	}
}

func TestUnknownViewAlwaysDenied(t *testing.T) {
	for _, role := range []Role{RoleManager, RoleSupervisor, RoleEmployee} {
		perms := DefaultPermissions(role)
		if perms.Get("payroll") {
			t.Errorf("%s granted an unknown view", role)
		}
	}
}

func TestOverrideTakesPrecedence(t *testing.T) {
	u, err := NewUser("Noa", "Levi", "556677889", "0545556666", "", "3333", RoleEmployee, time.Now())
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	if CanView(u, ViewReporting) {
		t.Fatal("employee default should deny reporting")
	}

	perms := DefaultPermissions(u.Role)
	if err := perms.Set(ViewReporting, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	u.Permissions = &perms

	if !CanView(u, ViewReporting) {
		t.Error("override ignored")
	}
	// Override replaces the defaults entirely, not per capability.
	if CanView(u, ViewDashboard) {
		t.Error("override unexpectedly granted dashboard")
	}
}

func TestSetRejectsUnknownView(t *testing.T) {
	perms := DefaultPermissions(RoleEmployee)
	if err := perms.Set("payroll", true); err == nil {
		t.Error("unknown view accepted")
	}
}

func TestNewUserDefaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	sup, err := NewUser("Avi", "Cohen", "987654321", "0523334444", "", "2222", RoleSupervisor, now)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if !sup.CanAssignTasks {
		t.Error("supervisors start with the assignment grant")
	}
	if sup.Email == "" {
		t.Error("missing email not auto-generated")
	}

	emp, _ := NewUser("Noa", "Levi", "556677889", "0545556666", "noa@bt.local", "3333", RoleEmployee, now)
	if emp.CanAssignTasks {
		t.Error("employees must not carry the assignment grant")
	}
	if emp.PasswordChanged || emp.FirstTimePassword != "3333" {
		t.Errorf("fresh account state wrong: changed=%v code=%q", emp.PasswordChanged, emp.FirstTimePassword)
	}

	if _, err := NewUser("", "Levi", "", "", "", "1111", RoleEmployee, now); err == nil {
		t.Error("missing name accepted")
	}
	if _, err := NewUser("Noa", "Levi", "", "", "", "1111", "INTERN", now); err == nil {
		t.Error("unknown role accepted")
	}
}
