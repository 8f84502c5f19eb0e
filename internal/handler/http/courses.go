package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, courses, http.StatusOK)
	return err
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) error {
	courseID, err := courseIDFromPath(r)
	if err != nil {
		return err
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, course, http.StatusOK)
	return err
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) error {
	owner, err := currentUser(r)
	if err != nil {
		return err
	}

	var request models.CourseRequest
	if err = decodeJSON(r, &request); err != nil {
		return err
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), owner, request)
	if writeValidationError(w, r, err) {
		return nil
	}
	if err != nil {
		return err
	}

	utils.WriteCreated(w, "/api/courses/"+strconv.FormatInt(course.CourseID, 10))
	return nil
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) error {
	owner, err := currentUser(r)
	if err != nil {
		return err
	}

	courseID, err := courseIDFromPath(r)
	if err != nil {
		return err
	}

	var request models.CourseRequest
	if err = decodeJSON(r, &request); err != nil {
		return err
	}

	err = h.services.CourseService.UpdateCourse(r.Context(), owner, courseID, request)
	if writeValidationError(w, r, err) {
		return nil
	}
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) error {
	owner, err := currentUser(r)
	if err != nil {
		return err
	}

	courseID, err := courseIDFromPath(r)
	if err != nil {
		return err
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), owner, courseID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
