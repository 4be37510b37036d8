package core

import (
	"testing"
	"time"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type capturedEmail struct {
	recipient, subject, body string
}

type captureComposer struct{ emails []capturedEmail }

func (c *captureComposer) ComposeEmail(recipient, subject, body string) error {
	c.emails = append(c.emails, capturedEmail{recipient, subject, body})
	return nil
}

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	store    *store.Store
	composer *captureComposer

	manager    *models.User
	supervisor *models.User
	employee   *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.New()
	f := &fixture{store: st, composer: &captureComposer{}}

	err := st.Update(func(state *store.AppState) error {
		mgr, err := models.NewUser("Dana", "Peretz", "123456789", "0501112222", "dana@bt.local", "1234", models.RoleManager, testNow)
		if err != nil {
			return err
		}
		mgr.PasswordChanged = true

		sup, err := models.NewUser("Avi", "Cohen", "987654321", "0523334444", "avi@bt.local", "2222", models.RoleSupervisor, testNow)
		if err != nil {
			return err
		}
		sup.PasswordChanged = true

		emp, err := models.NewUser("Noa", "Levi", "556677889", "0545556666", "noa@bt.local", "3333", models.RoleEmployee, testNow)
		if err != nil {
			return err
		}

		state.Users = append(state.Users, mgr, sup, emp)
		f.manager, f.supervisor, f.employee = mgr, sup, emp
		return nil
	})
	if err != nil {
		t.Fatalf("fixture setup: %v", err)
	}

	f.svc = New(st, fixedClock{testNow}, f.composer, Options{
		NewUserSecurityView: true,
		NoticeRecipient:     "manager@bt.local",
	})
	return f
}

// clockAt returns a copy of the fixture service running at a different time.
func (f *fixture) clockAt(t time.Time) *Service {
	return New(f.store, fixedClock{t}, f.composer, f.svc.opts)
}
