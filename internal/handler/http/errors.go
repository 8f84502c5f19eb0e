// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport level errors. They never leave this package: the terminal error
// handler turns them into responses through errorStatusMap.
var (
	// errInvalidJSON is returned when a request body cannot be decoded into
	// the expected payload.
	errInvalidJSON = errors.New("invalid JSON was passed")

	// errInvalidCourseID is returned when the {id} path parameter is not a
	// positive integer. It is answered like an unknown course.
	errInvalidCourseID = errors.New("invalid course id")

	// errRouteNotFound is returned for unmatched paths and methods.
	errRouteNotFound = errors.New("route not found")

	// errNoCurrentUser is returned when an authenticated route runs without
	// the auth middleware having stored a user.
	errNoCurrentUser = errors.New("no authenticated user in request context")
)
