// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

// courseRepository is the SQL implementation of [CourseRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (course_id, user_id).
type courseRepository struct {
	*DB
	logger *logger.Logger
}

// NewCourseRepository constructs a [CourseRepository] backed by the
// provided database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCourse inserts course and returns it with its assigned id.
// A UserID that references no user yields [ErrUserNotFound].
func (c *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCourseQuery(c.builder, course)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.CreateCourse").Msg("failed to build query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.QueryRowContext(ctx, query, args...).Scan(&course.CourseID); err != nil {
		classification := c.classify(err)
		log.Err(err).
			Str("func", "courseRepository.CreateCourse").
			Int64("user_id", course.UserID).
			Stringer("classification", classification).
			Msg("error inserting course")

		switch classification {
		case ForeignKeyViolation:
			return models.Course{}, ErrUserNotFound
		case Unclassified:
			return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		default:
			return models.Course{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
	}

	return course, nil
}

// ListCourses returns every course joined with its owner, ordered by id.
func (c *courseRepository) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(c.builder)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.ListCourses").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.ListCourses").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.CourseWithOwner, 0)
	for rows.Next() {
		course, scanErr := scanCourseWithOwner(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "courseRepository.ListCourses").Msg("failed to scan course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "courseRepository.ListCourses").Msg("error iterating course rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// FindCourseByID returns the course with its owner or [ErrCourseNotFound].
func (c *courseRepository) FindCourseByID(ctx context.Context, courseID int64) (models.CourseWithOwner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCourseByIDQuery(c.builder, courseID)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.FindCourseByID").Msg("failed to build query")
		return models.CourseWithOwner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	course, err := scanCourseWithOwner(c.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CourseWithOwner{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.FindCourseByID").
			Int64("course_id", courseID).
			Msg("error finding course")
		return models.CourseWithOwner{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

// UpdateCourse overwrites the mutable attributes of the course identified
// by update.CourseID and owned by update.UserID.
func (c *courseRepository) UpdateCourse(ctx context.Context, update models.CourseUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCourseQuery(c.builder, update)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.UpdateCourse").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.UpdateCourse").
			Int64("course_id", update.CourseID).
			Int64("user_id", update.UserID).
			Msg("error updating course")
		if c.classify(err) != Unclassified {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c.expectAffected(result, "courseRepository.UpdateCourse", log)
}

// DeleteCourse removes the course identified by courseID and owned by
// userID.
func (c *courseRepository) DeleteCourse(ctx context.Context, courseID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCourseQuery(c.builder, courseID, userID)
	if err != nil {
		log.Err(err).Str("func", "courseRepository.DeleteCourse").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "courseRepository.DeleteCourse").
			Int64("course_id", courseID).
			Int64("user_id", userID).
			Msg("error deleting course")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c.expectAffected(result, "courseRepository.DeleteCourse", log)
}

// expectAffected maps a statement that touched no row to [ErrCourseNotFound].
func (c *courseRepository) expectAffected(result sql.Result, funcName string, log *logger.Logger) error {
	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().Str("func", funcName).Msg("no course matched id and owner")
		return ErrCourseNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourseWithOwner(row rowScanner) (models.CourseWithOwner, error) {
	var course models.CourseWithOwner
	err := row.Scan(
		&course.CourseID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.Course.UserID,
		&course.User.UserID,
		&course.User.FirstName,
		&course.User.LastName,
		&course.User.EmailAddress,
	)

	return course, err
}
