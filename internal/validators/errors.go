package validators

import (
	"errors"
	"strings"
)

// ErrUnsupportedType is returned by a [Validator] asked to validate a value
// it has no rules for.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// Kind tags a [ValidationError] with the layer that detected it.
type Kind int

const (
	// KindValidation marks violations of declared attribute rules,
	// detected before anything is written.
	KindValidation Kind = iota

	// KindUniqueness marks a unique constraint rejected by the store.
	KindUniqueness
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUniqueness:
		return "uniqueness"
	default:
		return "unknown"
	}
}

// ValidationError carries the ordered, human-readable messages of every
// violated rule. Handlers answer it with 400 Bad Request.
type ValidationError struct {
	Kind     Kind
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Kind.String() + " failed: " + strings.Join(e.Messages, "; ")
}

// NewUniquenessError returns a [ValidationError] of [KindUniqueness] with a
// single message.
func NewUniquenessError(message string) *ValidationError {
	return &ValidationError{Kind: KindUniqueness, Messages: []string{message}}
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
