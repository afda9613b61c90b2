package middleware

import (
	"context"
	"net/http"

	"TOURSANDTRAVELS_BACK-END/internal/session"
	"TOURSANDTRAVELS_BACK-END/internal/utils"
)

// SessionCookie carries the opaque per-browser session identifier.
const SessionCookie = "tt_session"

type contextKey string

const (
	sessionContextKey contextKey = "session"
	sessionIDKey      contextKey = "session_id"
)

// Resolver attaches the browser session to request contexts.
type Resolver struct {
	manager *session.Manager
}

// NewResolver creates a resolver over the session registry.
func NewResolver(m *session.Manager) *Resolver {
	return &Resolver{manager: m}
}

// WithSession resolves the session cookie, minting a fresh anonymous session
// when none is present, and stores the session context on the request.
func (res *Resolver) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id = res.manager.NewID()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, res.manager.Context(id))
		ctx = context.WithValue(ctx, sessionIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireRole gates a handler on the session's claimed role. The role is
// client-trusted session data; this is a UI gate, not a security boundary.
func RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session")
			return
		}
		identity, ok := sess.Identity()
		if !ok {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Login required")
			return
		}
		if identity.Role != role {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Insufficient role")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireIdentity gates a handler on any identified session.
func RequireIdentity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session")
			return
		}
		if _, ok := sess.Identity(); !ok {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Login required")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// SessionFromContext returns the request's session context.
func SessionFromContext(ctx context.Context) (*session.Context, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Context)
	return sess, ok
}

// SessionIDFromContext returns the request's session identifier.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
