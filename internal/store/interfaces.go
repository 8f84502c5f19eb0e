package store

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with its assigned id.
	// A duplicate email address yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user, password digest included, or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns every user without the password digest.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CourseRepository persists courses in the "courses" table. Reads are
// joined with the owning user.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	ListCourses(ctx context.Context) ([]models.CourseWithOwner, error)
	FindCourseByID(ctx context.Context, courseID int64) (models.CourseWithOwner, error)
	// UpdateCourse and DeleteCourse only touch the row when both the id and
	// the owner match; otherwise they return [ErrCourseNotFound].
	UpdateCourse(ctx context.Context, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, courseID, userID int64) error
}
