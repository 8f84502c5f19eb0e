package service

import "errors"

var (
	// ErrAccessDenied is returned for every failed authentication: missing
	// credentials, unknown email and wrong password are indistinguishable.
	ErrAccessDenied = errors.New("access denied")

	// ErrAccessForbidden is returned when an authenticated user acts on a
	// course owned by another user.
	ErrAccessForbidden = errors.New("access forbidden")

	// ErrCourseNotFound is returned when the requested course does not exist.
	ErrCourseNotFound = errors.New("course not found")
)
