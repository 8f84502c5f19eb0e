// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return m.authenticateFn(ctx, email, password)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	registerUserFn func(ctx context.Context, request models.UserRequest) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.UserProjection, error)
}

func (m *mockUserService) RegisterUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.UserProjection, error) {
	return m.listUsersFn(ctx)
}

// mockCourseService implements service.CourseService for unit tests.
type mockCourseService struct {
	listCoursesFn  func(ctx context.Context) ([]models.CourseWithOwner, error)
	getCourseFn    func(ctx context.Context, courseID int64) (models.CourseWithOwner, error)
	createCourseFn func(ctx context.Context, owner models.User, request models.CourseRequest) (models.Course, error)
	updateCourseFn func(ctx context.Context, owner models.User, courseID int64, request models.CourseRequest) error
	deleteCourseFn func(ctx context.Context, owner models.User, courseID int64) error
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	return m.listCoursesFn(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, courseID int64) (models.CourseWithOwner, error) {
	return m.getCourseFn(ctx, courseID)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, owner models.User, request models.CourseRequest) (models.Course, error) {
	return m.createCourseFn(ctx, owner, request)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, owner models.User, courseID int64, request models.CourseRequest) error {
	return m.updateCourseFn(ctx, owner, courseID, request)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, owner models.User, courseID int64) error {
	return m.deleteCourseFn(ctx, owner, courseID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) Welcome(context.Context) string {
	return "Welcome to the REST API project!"
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var joe = models.User{UserID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}

// acceptJoe authenticates joe@smith.com/joepassword and denies everything else.
func acceptJoe() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, email, password string) (models.User, error) {
			if email == joe.EmailAddress && password == "joepassword" {
				return joe, nil
			}
			return models.User{}, service.ErrAccessDenied
		},
	}
}

// newTestRouter builds the full router over the given services. Nil services
// are replaced with fakes that fail the test when called.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = acceptJoe()
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.CourseService == nil {
		svcs.CourseService = &mockCourseService{}
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

// do sends a request through router and returns the recorded response.
func do(t *testing.T, router http.Handler, method, target, body string, auth ...string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if len(auth) == 2 {
		req.SetBasicAuth(auth[0], auth[1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func basicHeader(t *testing.T, credentials string) string {
	t.Helper()
	require.NotEmpty(t, credentials)
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}
