package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/workforce-dashboard-api/internal/config"
	"github.com/vfg2006/workforce-dashboard-api/internal/daterange"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
	"github.com/vfg2006/workforce-dashboard-api/internal/refresh"
	"github.com/vfg2006/workforce-dashboard-api/pkg/middleware"
)

type tokenAuthenticator map[string]*domain.Claims

func (a tokenAuthenticator) LoginUser(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (a tokenAuthenticator) GetUserProfile(context.Context, int) (*domain.User, error) {
	return nil, errors.New("not used")
}

func (a tokenAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	claims, ok := a[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

func TestNewHandler(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	bus := refresh.NewBus(refresh.WithClock(clock))
	store := daterange.NewStore(clock, bus)

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}
	h := NewHandler(cfg, Dependencies{
		Authenticator: tokenAuthenticator{
			"viewer": {UserID: 3, UserRoleID: middleware.RoleViewer},
		},
		Periods:        store,
		Subscriber:     bus,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
		Clock:          clock,
	})

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "healthcheck is public", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "metrics are public", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "periods need a token", method: http.MethodGet, path: "/v1/periods", wantStatus: http.StatusUnauthorized},
		{name: "bad token", method: http.MethodGet, path: "/v1/periods", token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "viewer reads periods", method: http.MethodGet, path: "/v1/periods", token: "viewer", wantStatus: http.StatusOK},
		{name: "viewer cannot run jobs", method: http.MethodPost, path: "/v1/cron/all/run", token: "viewer", wantStatus: http.StatusForbidden},
		{name: "preflight", method: http.MethodOptions, path: "/v1/resources", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
