package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

func seedAccounts(t *testing.T) (*store.Store, *models.User, *models.User) {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	st := store.New()

	var manager, employee *models.User
	err := st.Update(func(state *store.AppState) error {
		mgr, err := models.NewUser("Dana", "Peretz", "123456789", "0501112222", "dana@bt.local", "1234", models.RoleManager, now)
		if err != nil {
			return err
		}
		mgr.PasswordChanged = true

		emp, err := models.NewUser("Noa", "Levi", "556677889", "0545556666", "noa@bt.local", "3333", models.RoleEmployee, now)
		if err != nil {
			return err
		}

		state.Users = append(state.Users, mgr, emp)
		manager, employee = mgr, emp
		return nil
	})
	if err != nil {
		t.Fatalf("seed accounts: %v", err)
	}
	return st, manager, employee
}

func requestAs(method, target string, u *models.User) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), UserIDKey, u.ID)
	ctx = context.WithValue(ctx, UserRoleKey, string(u.Role))
	return r.WithContext(ctx)
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestPasswordGateBlocksFreshCodes(t *testing.T) {
	st, manager, employee := seedAccounts(t)

	// Same shape as the real route tree: the change-password endpoint
	// sits outside the gated subrouter.
	router := mux.NewRouter()
	router.HandleFunc("/auth/change-password", okHandler).Methods("POST")
	gated := router.NewRoute().Subrouter()
	gated.Use(PasswordGate(st))
	gated.HandleFunc("/tasks", okHandler).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, requestAs("GET", "/tasks", employee))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("gated route status = %d, want 403", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), "password_change_required") {
		t.Errorf("body = %q, want the password_change_required code", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, requestAs("POST", "/auth/change-password", employee))
	if rec.Code != http.StatusOK {
		t.Errorf("change-password status = %d, want 200 for a fresh-code user", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, requestAs("GET", "/tasks", manager))
	if rec.Code != http.StatusOK {
		t.Errorf("settled-password user status = %d, want 200", rec.Code)
	}
}

func TestPasswordGateRequiresAuthentication(t *testing.T) {
	st, _, _ := seedAccounts(t)

	handler := PasswordGate(st)(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/tasks", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no-context status = %d, want 401", rec.Code)
	}
}

func TestRequireCapabilityFailsClosed(t *testing.T) {
	st, manager, employee := seedAccounts(t)

	router := mux.NewRouter()
	dashboard := router.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(RequireCapability(st, models.ViewDashboard))
	dashboard.HandleFunc("/stats", okHandler).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, requestAs("GET", "/dashboard/stats", manager))
	if rec.Code != http.StatusOK {
		t.Errorf("manager status = %d, want 200", rec.Code)
	}

	// The employee default set denies the dashboard view.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, requestAs("GET", "/dashboard/stats", employee))
	if rec.Code != http.StatusForbidden {
		t.Errorf("employee status = %d, want 403", rec.Code)
	}

	// A token for a deleted account must not pass.
	ghost := &models.User{ID: "gone", Role: models.RoleManager}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, requestAs("GET", "/dashboard/stats", ghost))
	if rec.Code != http.StatusForbidden {
		t.Errorf("deleted-account status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard/stats", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no-context status = %d, want 401", rec.Code)
	}
}

func TestRequireCapabilityDeniesUnknownView(t *testing.T) {
	st, manager, _ := seedAccounts(t)

	handler := RequireCapability(st, "payroll")(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestAs("GET", "/payroll", manager))
	if rec.Code != http.StatusForbidden {
		t.Errorf("unknown capability status = %d, want 403 even for managers", rec.Code)
	}
}
