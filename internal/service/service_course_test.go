// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/mock"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

var (
	joe   = models.User{UserID: 1, EmailAddress: "joe@smith.com"}
	sally = models.User{UserID: 2, EmailAddress: "sally@jones.com"}
)

func newTestCourseSvc(t *testing.T) (CourseService, *mock.MockCourseRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCourseRepository(ctrl)

	return NewCourseService(repo, validators.NewCourseValidator(), logger.Nop()), repo
}

func joesCourse(id int64) models.CourseWithOwner {
	return models.CourseWithOwner{
		Course: models.Course{CourseID: id, Title: "Bookcase", Description: "Desc", UserID: joe.UserID},
		User:   joe.Projection(),
	}
}

func validCourseRequest() models.CourseRequest {
	return models.CourseRequest{
		Title:         ptr("Build a Basic Bookcase"),
		Description:   ptr("High-end furniture projects are great to dream about."),
		EstimatedTime: ptr("12 hours"),
	}
}

// ── reads ─────────────────────────────────────────────────────────────────────

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(999999)).Return(models.CourseWithOwner{}, store.ErrCourseNotFound)

	_, err := svc.GetCourse(context.Background(), 999999)

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseService_GetCourse_StorageError(t *testing.T) {
	svc, repo := newTestCourseSvc(t)
	dbErr := errors.New("boom")

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(1)).Return(models.CourseWithOwner{}, dbErr)

	_, err := svc.GetCourse(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseService_ListCourses(t *testing.T) {
	svc, repo := newTestCourseSvc(t)
	courses := []models.CourseWithOwner{joesCourse(1), joesCourse(2)}

	repo.EXPECT().ListCourses(gomock.Any()).Return(courses, nil)

	got, err := svc.ListCourses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, courses, got)
}

// ── create ────────────────────────────────────────────────────────────────────

func TestCourseService_CreateCourse_OwnedByCaller(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Course) (models.Course, error) {
			assert.Equal(t, joe.UserID, c.UserID)
			assert.Nil(t, c.MaterialsNeeded)
			c.CourseID = 5
			return c, nil
		},
	)

	course, err := svc.CreateCourse(context.Background(), joe, validCourseRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5), course.CourseID)
}

func TestCourseService_CreateCourse_MatchingUserIDAccepted(t *testing.T) {
	svc, repo := newTestCourseSvc(t)
	request := validCourseRequest()
	request.UserID = ptr(joe.UserID)

	repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(models.Course{CourseID: 1}, nil)

	_, err := svc.CreateCourse(context.Background(), joe, request)

	assert.NoError(t, err)
}

func TestCourseService_CreateCourse_ForeignUserIDForbidden(t *testing.T) {
	svc, _ := newTestCourseSvc(t)
	request := validCourseRequest()
	request.UserID = ptr(sally.UserID)

	_, err := svc.CreateCourse(context.Background(), joe, request)

	assert.ErrorIs(t, err, ErrAccessForbidden)
}

func TestCourseService_CreateCourse_Invalid(t *testing.T) {
	svc, _ := newTestCourseSvc(t)

	_, err := svc.CreateCourse(context.Background(), joe, models.CourseRequest{Title: ptr("  ")})

	vErr, ok := validators.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgTitleEmpty, validators.MsgDescriptionRequired}, vErr.Messages)
}

// ── update ────────────────────────────────────────────────────────────────────

func TestCourseService_UpdateCourse_Success(t *testing.T) {
	svc, repo := newTestCourseSvc(t)
	request := validCourseRequest()

	gomock.InOrder(
		repo.EXPECT().FindCourseByID(gomock.Any(), int64(3)).Return(joesCourse(3), nil),
		repo.EXPECT().UpdateCourse(gomock.Any(), models.CourseUpdate{
			CourseID:      3,
			UserID:        joe.UserID,
			Title:         *request.Title,
			Description:   *request.Description,
			EstimatedTime: request.EstimatedTime,
		}).Return(nil),
	)

	assert.NoError(t, svc.UpdateCourse(context.Background(), joe, 3, request))
}

func TestCourseService_UpdateCourse_NotFoundBeforeOwnership(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(999999)).Return(models.CourseWithOwner{}, store.ErrCourseNotFound)

	err := svc.UpdateCourse(context.Background(), sally, 999999, validCourseRequest())

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

// TestCourseService_UpdateCourse_ForbiddenRegardlessOfPayload verifies that
// a non-owner is rejected before the payload is validated.
func TestCourseService_UpdateCourse_ForbiddenRegardlessOfPayload(t *testing.T) {
	for name, request := range map[string]models.CourseRequest{
		"valid payload":   validCourseRequest(),
		"invalid payload": {},
	} {
		t.Run(name, func(t *testing.T) {
			svc, repo := newTestCourseSvc(t)
			repo.EXPECT().FindCourseByID(gomock.Any(), int64(3)).Return(joesCourse(3), nil)

			err := svc.UpdateCourse(context.Background(), sally, 3, request)

			assert.ErrorIs(t, err, ErrAccessForbidden)
		})
	}
}

func TestCourseService_UpdateCourse_InvalidLeavesRowUntouched(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(3)).Return(joesCourse(3), nil)
	// no UpdateCourse expectation: gomock fails the test if it is called

	err := svc.UpdateCourse(context.Background(), joe, 3, models.CourseRequest{Description: ptr("")})

	vErr, ok := validators.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{validators.MsgTitleRequired, validators.MsgDescriptionEmpty}, vErr.Messages)
}

func TestCourseService_UpdateCourse_DeletedConcurrently(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(3)).Return(joesCourse(3), nil)
	repo.EXPECT().UpdateCourse(gomock.Any(), gomock.Any()).Return(store.ErrCourseNotFound)

	err := svc.UpdateCourse(context.Background(), joe, 3, validCourseRequest())

	assert.ErrorIs(t, err, ErrCourseNotFound)
}

// ── delete ────────────────────────────────────────────────────────────────────

func TestCourseService_DeleteCourse_Success(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	gomock.InOrder(
		repo.EXPECT().FindCourseByID(gomock.Any(), int64(3)).Return(joesCourse(3), nil),
		repo.EXPECT().DeleteCourse(gomock.Any(), int64(3), joe.UserID).Return(nil),
	)

	assert.NoError(t, svc.DeleteCourse(context.Background(), joe, 3))
}

func TestCourseService_DeleteCourse_Forbidden(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(3)).Return(joesCourse(3), nil)

	assert.ErrorIs(t, svc.DeleteCourse(context.Background(), sally, 3), ErrAccessForbidden)
}

func TestCourseService_DeleteCourse_NotFound(t *testing.T) {
	svc, repo := newTestCourseSvc(t)

	repo.EXPECT().FindCourseByID(gomock.Any(), int64(4)).Return(models.CourseWithOwner{}, store.ErrCourseNotFound)

	assert.ErrorIs(t, svc.DeleteCourse(context.Background(), joe, 4), ErrCourseNotFound)
}
