package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/workforce-dashboard-api/internal/domain"
)

type fakeValidator struct {
	claims *domain.Claims
}

func (f fakeValidator) ValidateToken(token string) (*domain.Claims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return f.claims, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	validator := fakeValidator{claims: &domain.Claims{UserID: 1, UserRoleID: RoleViewer}}

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
	}{
		{name: "public login", target: "/v1/login", wantStatus: http.StatusNoContent},
		{name: "public metrics", target: "/metrics", wantStatus: http.StatusNoContent},
		{name: "missing header", target: "/v1/periods", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer", target: "/v1/periods", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad token", target: "/v1/periods", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "good token", target: "/v1/periods", header: "Bearer good", wantStatus: http.StatusNoContent},
		{name: "event stream query token", target: "/v1/events?access_token=good", wantStatus: http.StatusNoContent},
		{name: "query token elsewhere is ignored", target: "/v1/periods?access_token=good", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "admin", claims: &domain.Claims{UserRoleID: RoleAdmin}, wantStatus: http.StatusNoContent},
		{name: "viewer", claims: &domain.Claims{UserRoleID: RoleViewer}, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/period-rollover/run", nil)
			rec := httptest.NewRecorder()

			handler := AdminOnly()(okHandler())
			if tt.claims != nil {
				handler = AuthMiddleware(fakeValidator{claims: tt.claims})(handler)
				req.Header.Set("Authorization", "Bearer good")
			}
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/periods", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/periods", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_ForwardsFlush(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if assert.True(t, ok) {
			w.Write([]byte("data: hi\n\n"))
			flusher.Flush()
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

	assert.True(t, rec.Flushed)
	assert.Equal(t, "data: hi\n\n", rec.Body.String())
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/periods", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
