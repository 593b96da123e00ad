package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/pkg/utils"
)

type ContextKey string

const EmailKey ContextKey = "email"

// RoleSource resolves the stored role for an authenticated email. Roles are
// never taken from the token payload because tokens are not re-issued on
// role change.
type RoleSource interface {
	GetRole(ctx context.Context, email string) (string, error)
}

type Middleware struct {
	jwtService JWTServiceInterface
	roles      RoleSource
}

func NewMiddleware(jwtService JWTServiceInterface, roles RoleSource) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		roles:      roles,
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate rejects requests without a valid bearer token and attaches
// the claimed email to the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly must be chained after Authenticate.
func (m *Middleware) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := r.Context().Value(EmailKey).(string)
		if !ok || email == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		role, err := m.roles.GetRole(r.Context(), email)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if role != domain.RoleAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}
