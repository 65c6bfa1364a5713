package handler

import (
	"net/http"

	"github.com/vfg2006/workforce-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/workforce-dashboard-api/pkg/log"
	"github.com/vfg2006/workforce-dashboard-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "email and password are required", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithField("email", req.Email).Info("login rejected")
			}
			writeServiceError(w, r, err, "error logging in")
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	})
}

// GetMe returns the profile of the authenticated user
func GetMe(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "error fetching user profile")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	})
}
