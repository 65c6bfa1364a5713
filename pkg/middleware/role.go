package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleViewer  = 3
)

// RoleMiddleware rejects users whose role is not in allowedRoles
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warn("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warnf("access denied for user ID=%d, role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrManager guards writes
func AdminOrManager() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleManager})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleManager, RoleViewer})
}
