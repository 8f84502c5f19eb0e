package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			listUsersFn: func(context.Context) ([]models.UserProjection, error) {
				return []models.UserProjection{joe.Projection()}, nil
			},
		},
	})

	w := do(t, router, http.MethodGet, "/api/users", "", "joe@smith.com", "joepassword")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
}

func TestListUsers_ServiceError(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			listUsersFn: func(context.Context) ([]models.UserProjection, error) {
				return nil, errors.New("db is down")
			},
		},
	})

	w := do(t, router, http.MethodGet, "/api/users", "", "joe@smith.com", "joepassword")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","error":{}}`, w.Body.String())
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, request models.UserRequest) (models.User, error)
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "created",
			body: `{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`,
			registerFn: func(_ context.Context, request models.UserRequest) (models.User, error) {
				require.NotNil(t, request.Password)
				assert.Equal(t, "joepassword", *request.Password)
				return joe, nil
			},
			wantStatus: http.StatusCreated,
			wantHeader: "/",
		},
		{
			name: "validation errors",
			body: `{}`,
			registerFn: func(context.Context, models.UserRequest) (models.User, error) {
				return models.User{}, &validators.ValidationError{
					Kind:     validators.KindValidation,
					Messages: []string{validators.MsgFirstNameRequired, validators.MsgLastNameRequired},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["A first name is required","A last name is required"]}`,
		},
		{
			name: "duplicate email",
			body: `{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`,
			registerFn: func(context.Context, models.UserRequest) (models.User, error) {
				return models.User{}, validators.NewUniquenessError(validators.MsgEmailAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["The email you entered already exists"]}`,
		},
		{
			name: "empty body is an empty object",
			body: "",
			registerFn: func(_ context.Context, request models.UserRequest) (models.User, error) {
				assert.Equal(t, models.UserRequest{}, request)
				return models.User{}, &validators.ValidationError{Kind: validators.KindValidation, Messages: []string{validators.MsgPasswordRequired}}
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["A password is required"]}`,
		},
		{
			name:       "invalid JSON",
			body:       `{"firstName":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid JSON was passed","error":{}}`,
		},
		{
			name:       "trailing data after JSON value",
			body:       `{"firstName":"Joe"}garbage`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid JSON was passed","error":{}}`,
		},
		{
			name: "unexpected error",
			body: `{}`,
			registerFn: func(context.Context, models.UserRequest) (models.User, error) {
				return models.User{}, errors.New("boom")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal Server Error","error":{}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &service.Services{
				UserService: &mockUserService{registerUserFn: tt.registerFn},
			})

			w := do(t, router, http.MethodPost, "/api/users", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			if tt.wantHeader != "" {
				assert.Equal(t, tt.wantHeader, w.Header().Get("Location"))
			}
		})
	}
}
