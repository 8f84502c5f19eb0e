package service

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

// AuthService resolves Basic credentials to a user.
type AuthService interface {
	// Authenticate returns the user owning email when password matches its
	// digest. Every credential problem yields [ErrAccessDenied]; other
	// errors are infrastructure failures.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// UserService implements signup and the user listing.
type UserService interface {
	RegisterUser(ctx context.Context, request models.UserRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.UserProjection, error)
}

// CourseService implements course reads and the owner-only mutations.
//
// Mutations check, in this order: existence ([ErrCourseNotFound]),
// ownership ([ErrAccessForbidden]), then payload validity
// (*validators.ValidationError).
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.CourseWithOwner, error)
	GetCourse(ctx context.Context, courseID int64) (models.CourseWithOwner, error)
	CreateCourse(ctx context.Context, owner models.User, request models.CourseRequest) (models.Course, error)
	UpdateCourse(ctx context.Context, owner models.User, courseID int64, request models.CourseRequest) error
	DeleteCourse(ctx context.Context, owner models.User, courseID int64) error
}

// AppInfoService exposes static information about the running application.
type AppInfoService interface {
	Welcome(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
