package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	errUnexpectedLocation = errors.New("unexpected Location header")
)

// ResponseError is a non-2xx answer of the API. It unwraps to one of the
// sentinel errors above when the status code is known.
type ResponseError struct {
	StatusCode int

	// Message is the "message" field of the response body, if any.
	Message string

	// Errors holds the validation messages of a 400 response, in the order
	// the API reported them.
	Errors []string

	kind error
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	if e.kind != nil {
		b.WriteString(e.kind.Error())
	} else {
		b.WriteString("unexpected response")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Errors) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Errors, "; "))
	}
	return b.String()
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// AsResponseError unwraps err into a *ResponseError.
func AsResponseError(err error) (*ResponseError, bool) {
	var responseErr *ResponseError
	ok := errors.As(err, &responseErr)
	return responseErr, ok
}
