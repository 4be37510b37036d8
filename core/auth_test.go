package core

import (
	"errors"
	"testing"

	"WorkforceBackend/models"
)

func TestLoginManagerFastPath(t *testing.T) {
	f := newFixture(t)

	user, err := f.svc.LoginManager()
	if err != nil {
		t.Fatalf("LoginManager: %v", err)
	}
	if user.ID != f.manager.ID {
		t.Errorf("logged in %s, want first manager %s", user.ID, f.manager.ID)
	}

	events := f.svc.SessionEvents()
	if len(events) != 1 {
		t.Fatalf("got %d session events, want 1", len(events))
	}
	if events[0].Kind != models.EventLogin || events[0].UserID != f.manager.ID {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestLoginEmployeeByPhoneAndTZ(t *testing.T) {
	f := newFixture(t)

	for _, identifier := range []string{f.employee.Phone, f.employee.TZ} {
		user, err := f.svc.LoginEmployee(identifier)
		if err != nil {
			t.Fatalf("LoginEmployee(%q): %v", identifier, err)
		}
		if user.ID != f.employee.ID {
			t.Errorf("LoginEmployee(%q) = %s, want %s", identifier, user.ID, f.employee.ID)
		}
	}
}

func TestLoginEmployeeNeverMatchesManager(t *testing.T) {
	f := newFixture(t)

	for _, identifier := range []string{f.manager.Phone, f.manager.TZ} {
		if _, err := f.svc.LoginEmployee(identifier); !errors.Is(err, ErrBadCredentials) {
			t.Errorf("LoginEmployee(%q) err = %v, want ErrBadCredentials", identifier, err)
		}
	}
}

func TestLoginEmployeeUnknownIdentifier(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.LoginEmployee("0000000000"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("err = %v, want ErrBadCredentials", err)
	}
	if _, err := f.svc.LoginEmployee(""); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("empty identifier err = %v, want ErrBadCredentials", err)
	}
}

func TestLogoutLandsInSessionFeed(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.LoginEmployee(f.employee.Phone); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := f.svc.Logout(f.employee.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	events := f.svc.SessionEvents()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Most recent first
	if events[0].Kind != models.EventLogout {
		t.Errorf("head event kind = %s, want logout", events[0].Kind)
	}
}

func TestSessionFeedCapped(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < models.SessionFeedCap+5; i++ {
		if _, err := f.svc.LoginEmployee(f.employee.Phone); err != nil {
			t.Fatalf("login %d: %v", i, err)
		}
	}
	if got := len(f.svc.SessionEvents()); got != models.SessionFeedCap {
		t.Errorf("feed length = %d, want %d", got, models.SessionFeedCap)
	}
}

func TestChangePasswordPolicy(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name, password, confirm string
		wantErr                 error
	}{
		{"too short", "123", "123", ErrPasswordPolicy},
		{"mismatch", "abcd", "abce", ErrPasswordPolicy},
		{"ok", "abcd", "abcd", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.svc.ChangePassword(f.employee.ID, tc.password, tc.confirm)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	user, err := f.svc.GetUser(f.employee.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !user.PasswordChanged {
		t.Error("PasswordChanged still false after successful change")
	}
	if user.FirstTimePassword != "3333" {
		t.Errorf("first-time code lost, got %q", user.FirstTimePassword)
	}
}

func TestChangeAccessCodeChecksCurrent(t *testing.T) {
	f := newFixture(t)

	if err := f.svc.ChangeAccessCode(f.supervisor.ID, "wrong", "5678", "5678"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("err = %v, want ErrPasswordMismatch", err)
	}
	if err := f.svc.ChangeAccessCode(f.supervisor.ID, "2222", "5678", "5678"); err != nil {
		t.Errorf("valid change failed: %v", err)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	f := newFixture(t)

	if err := f.svc.CompleteOnboarding(f.employee.ID); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	user, err := f.svc.GetUser(f.employee.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !user.Onboarded {
		t.Error("Onboarded still false")
	}

	if err := f.svc.CompleteOnboarding("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user err = %v, want ErrNotFound", err)
	}
}

func TestFirstMatchWinsOnDuplicateIdentifier(t *testing.T) {
	f := newFixture(t)

	// A later account reusing the employee's phone must not shadow them.
	_, _, err := f.svc.CreateUser(f.manager.ID, UserInput{
		Name: "Late", LastName: "Joiner", TZ: "111111111", Phone: f.employee.Phone, Role: models.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	user, err := f.svc.LoginEmployee(f.employee.Phone)
	if err != nil {
		t.Fatalf("LoginEmployee: %v", err)
	}
	if user.ID != f.employee.ID {
		t.Errorf("login matched %s, want the earlier account %s", user.ID, f.employee.ID)
	}
}
