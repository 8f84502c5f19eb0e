package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestInit_Welcome(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	w := do(t, router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Welcome to the REST API project!"}`, w.Body.String())
}

func TestInit_Version(t *testing.T) {
	router := newTestRouter(t, &service.Services{AppInfoService: &mockAppInfoService{version: "v1.2.3"}})

	w := do(t, router, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3", w.Body.String())
}

func TestInit_RouteNotFound(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/api/unknown"},
		{name: "unknown nested path", method: http.MethodGet, target: "/api/courses/1/lessons"},
		{name: "unsupported method on collection", method: http.MethodPatch, target: "/api/courses"},
		{name: "unsupported method on users", method: http.MethodDelete, target: "/api/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.target, "")

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"message":"Route Not Found","error":{}}`, w.Body.String())
		})
	}
}

func TestInit_TrailingSlashIsIgnored(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	w := do(t, router, http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/courses"},
		{http.MethodPut, "/api/courses/1"},
		{http.MethodDelete, "/api/courses/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := do(t, router, tt.method, tt.target, `{}`)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message":"Access Denied"}`, w.Body.String())
		})
	}
}
