package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKeyType string

const claimsKey contextKeyType = "claims"

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "jwt"

// Claims represents the authenticated caller extracted from the session token.
type Claims struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// TokenValidator validates a session token string and returns its claims.
// Each service injects its own validation logic.
type TokenValidator func(token string) (*Claims, error)

// Auth validates the session cookie and injects the caller's claims into
// context. Requests without a valid cookie are rejected with 401.
func Auth(validate TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, http.StatusUnauthorized, "Authentication failed: Token not provided.")
				return
			}

			claims, err := validate(cookie.Value)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authentication failed: Invalid token.")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers whose session token does not carry the
// administrator flag. Mount after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeAuthError(w, http.StatusForbidden, "Not authorized as an admin.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext extracts the authenticated caller from the request context.
// Returns nil when the request did not pass the Auth middleware.
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": message,
	})
}
