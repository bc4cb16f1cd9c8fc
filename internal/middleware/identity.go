package middleware

import (
	"log/slog"
	"net/http"

	"lifesaver/internal/auth"

	"github.com/google/uuid"
)

const UserIDHeader = "X-User-ID"

// Identity attaches the caller's user id from X-User-ID to the request
// context. A missing header passes through unauthenticated; a malformed one
// is rejected.
func Identity(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				logger.Warn("invalid user id header", slog.String("value", raw))
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"error":"User not authenticated"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), id)))
		})
	}
}
