package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// eventStreamPath accepts the token as a query parameter since EventSource cannot send headers
const eventStreamPath = "/v1/events"

var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/healthcheck": true,
	"/metrics":     true,
}

type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "bearer token is required", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		return token, token != authHeader && token != ""
	}

	if r.URL.Path == eventStreamPath {
		token := r.URL.Query().Get("access_token")
		return token, token != ""
	}

	return "", false
}

// ClaimsFromContext returns the claims stored by AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
