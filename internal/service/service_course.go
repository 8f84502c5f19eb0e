// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

// courseService is the concrete implementation of CourseService.
type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewCourseService constructs a CourseService backed by courseRepository.
func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	courses, err := s.courseRepository.ListCourses(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing courses")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID int64) (models.CourseWithOwner, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, courseID)
	if err != nil {
		return models.CourseWithOwner{}, s.courseLookupError(ctx, courseID, err)
	}

	return course, nil
}

// CreateCourse stores a new course owned by owner.
//
// A userId in the payload is accepted only when it names owner; any other
// value yields ErrAccessForbidden so a user cannot create courses on
// someone else's behalf.
func (s *courseService) CreateCourse(ctx context.Context, owner models.User, request models.CourseRequest) (models.Course, error) {
	log := logger.FromContext(ctx)

	if request.UserID != nil && *request.UserID != owner.UserID {
		log.Warn().
			Int64("user_id", owner.UserID).
			Int64("requested_user_id", *request.UserID).
			Msg("attempt to create a course for another user")
		return models.Course{}, ErrAccessForbidden
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("course payload is invalid")
		return models.Course{}, err
	}

	course, err := s.courseRepository.CreateCourse(ctx, models.Course{
		Title:           *request.Title,
		Description:     *request.Description,
		EstimatedTime:   request.EstimatedTime,
		MaterialsNeeded: request.MaterialsNeeded,
		UserID:          owner.UserID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", owner.UserID).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	log.Info().Int64("course_id", course.CourseID).Int64("user_id", owner.UserID).Msg("course created")
	return course, nil
}

// UpdateCourse overwrites the four mutable attributes of the course with
// the payload. Attributes missing from the payload become null, so a
// missing title or description fails validation.
func (s *courseService) UpdateCourse(ctx context.Context, owner models.User, courseID int64, request models.CourseRequest) error {
	log := logger.FromContext(ctx)

	if err := s.authorize(ctx, owner, courseID); err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Int64("course_id", courseID).Msg("course payload is invalid")
		return err
	}

	err := s.courseRepository.UpdateCourse(ctx, models.CourseUpdate{
		CourseID:        courseID,
		UserID:          owner.UserID,
		Title:           *request.Title,
		Description:     *request.Description,
		EstimatedTime:   request.EstimatedTime,
		MaterialsNeeded: request.MaterialsNeeded,
	})
	if err != nil {
		return s.courseLookupError(ctx, courseID, err)
	}

	log.Info().Int64("course_id", courseID).Msg("course updated")
	return nil
}

func (s *courseService) DeleteCourse(ctx context.Context, owner models.User, courseID int64) error {
	if err := s.authorize(ctx, owner, courseID); err != nil {
		return err
	}

	if err := s.courseRepository.DeleteCourse(ctx, courseID, owner.UserID); err != nil {
		return s.courseLookupError(ctx, courseID, err)
	}

	logger.FromContext(ctx).Info().Int64("course_id", courseID).Msg("course deleted")
	return nil
}

// authorize checks that the course exists and then that owner owns it.
func (s *courseService) authorize(ctx context.Context, owner models.User, courseID int64) error {
	course, err := s.courseRepository.FindCourseByID(ctx, courseID)
	if err != nil {
		return s.courseLookupError(ctx, courseID, err)
	}

	if !course.IsOwnedBy(owner.UserID) {
		logger.FromContext(ctx).Warn().
			Int64("course_id", courseID).
			Int64("owner_id", course.Course.UserID).
			Int64("user_id", owner.UserID).
			Msg("access to a course of another user")
		return ErrAccessForbidden
	}

	return nil
}

func (s *courseService) courseLookupError(ctx context.Context, courseID int64, err error) error {
	if errors.Is(err, store.ErrCourseNotFound) {
		return fmt.Errorf("%w: id %d", ErrCourseNotFound, courseID)
	}

	logger.FromContext(ctx).Err(err).Int64("course_id", courseID).Msg("course storage error")
	return fmt.Errorf("course storage error: %w", err)
}
