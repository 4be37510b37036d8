package middleware

import (
	"net/http"

	"WorkforceBackend/models"
	"WorkforceBackend/store"
)

// RequireCapability gates a route group behind one view capability. The
// check fails closed: missing users, role tokens for deleted accounts and
// unknown capability ids all produce 403.
func RequireCapability(st *store.Store, viewID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			allowed := false
			st.View(func(state *store.AppState) {
				if u := state.UserByID(userID); u != nil {
					allowed = models.CanView(u, viewID)
				}
			})
			if !allowed {
				http.Error(w, "Access to this view is not permitted", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ManagerOnly restricts a route group to manager accounts.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := r.Context().Value(UserRoleKey)
		if role != string(models.RoleManager) {
			http.Error(w, "Manager access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PasswordGate blocks accounts that still carry their first-time access
// code. Such users can only reach the password change endpoint, which is
// mounted outside the gated subrouter.
func PasswordGate(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			blocked := false
			st.View(func(state *store.AppState) {
				if u := state.UserByID(userID); u != nil && !u.PasswordChanged {
					blocked = true
				}
			})
			if blocked {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"password_change_required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
