package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/andhikaps/patungan/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// workspaceKey is the context key for the resolved session workspace.
const workspaceKey contextKey = "workspace"

// WorkspaceFrom extracts the session workspace from the context.
// Returns nil outside the session middleware.
func WorkspaceFrom(ctx context.Context) *session.Workspace {
	w, _ := ctx.Value(workspaceKey).(*session.Workspace)
	return w
}

// RequireSession validates the bearer session token and puts the
// resolved workspace on the request context. Requests without a valid
// token get 401 with the same JSON error shape the handlers use.
func RequireSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, session.ErrMissingToken)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, session.ErrInvalidToken)
				return
			}

			ws, err := sessions.Get(parts[1])
			if err != nil {
				unauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), workspaceKey, ws)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	code := "UNAUTHENTICATED"
	if errors.Is(err, session.ErrSessionNotFound) {
		code = "SESSION_NOT_FOUND"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": err.Error()},
	})
}
