package client

import "errors"

var errInvalidCourseID = errors.New("course id must be a positive integer")
