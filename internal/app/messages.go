// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// courses API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgWelcome is the body of the root route.
	MsgWelcome = "Welcome to the REST API project!"

	// MsgAccessDenied is returned for every authentication failure: missing
	// or malformed credentials, unknown email and wrong password alike.
	MsgAccessDenied = "Access Denied"

	// MsgAccessForbidden is returned when an authenticated user tries to
	// change a course owned by someone else.
	MsgAccessForbidden = "Access Forbidden"

	// MsgCourseNotFound is returned when the course id does not resolve to
	// an existing course.
	MsgCourseNotFound = "Course not found"

	// MsgRouteNotFound is returned for unmatched routes and unsupported
	// methods.
	MsgRouteNotFound = "Route Not Found"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. Details are logged, never sent.
	MsgInternalServerError = "Internal Server Error"
)
