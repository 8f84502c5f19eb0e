// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the courses API.
//
// The primary abstraction is [APIAdapter], which decouples the command line
// client from the HTTP transport. The package ships an HTTP/REST
// implementation ([NewHTTPAPIAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401) and [AsResponseError] to read the messages
// the API returned.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines the operations of the courses API as seen by a client.
// Implementations are responsible for serialisation, Basic credentials and
// mapping transport-level errors to the sentinel values of this package.
type APIAdapter interface {
	// SetCredentials stores the email and password sent as Basic credentials
	// on authenticated routes.
	SetCredentials(email, password string)

	// Welcome calls GET / and returns the welcome message.
	Welcome(ctx context.Context) (string, error)

	// Version calls GET /api/version and returns the server build version.
	Version(ctx context.Context) (string, error)

	// ListUsers calls GET /api/users. Requires credentials.
	ListUsers(ctx context.Context) ([]models.UserProjection, error)

	// CreateUser calls POST /api/users.
	CreateUser(ctx context.Context, request models.UserRequest) error

	// ListCourses calls GET /api/courses.
	ListCourses(ctx context.Context) ([]models.CourseWithOwner, error)

	// GetCourse calls GET /api/courses/{id}.
	GetCourse(ctx context.Context, courseID int64) (models.CourseWithOwner, error)

	// CreateCourse calls POST /api/courses and returns the id taken from the
	// Location header. Requires credentials.
	CreateCourse(ctx context.Context, request models.CourseRequest) (int64, error)

	// UpdateCourse calls PUT /api/courses/{id}. Requires credentials.
	UpdateCourse(ctx context.Context, courseID int64, request models.CourseRequest) error

	// DeleteCourse calls DELETE /api/courses/{id}. Requires credentials.
	DeleteCourse(ctx context.Context, courseID int64) error
}
