package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/workforce-dashboard-api/pkg/apiErrors"
)

func tag(value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:        "/v1/projects/:id",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) }),
		Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
	}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "matched", method: http.MethodGet, path: "/v1/projects/1", wantStatus: http.StatusTeapot},
		{name: "unknown path", method: http.MethodGet, path: "/v1/nothing", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/v1/projects/1", wantStatus: apiErrors.StatusFor(apiErrors.ErrMethodNotAllowed)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusTeapot {
				assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Order"))
			} else {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}
