package validators

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
	"github.com/go-playground/validator/v10"
)

// User attribute messages. MsgEmailAlreadyExists is raised by the store's
// unique index rather than by a rule, but lives here with the rest.
const (
	MsgFirstNameRequired  = "A first name is required"
	MsgFirstNameEmpty     = "Please provide a first name"
	MsgLastNameRequired   = "A last name is required"
	MsgLastNameEmpty      = "Please provide a last name"
	MsgEmailRequired      = "An email is required"
	MsgEmailInvalid       = "Please provide a valid email address"
	MsgEmailAlreadyExists = "The email you entered already exists"
	MsgPasswordRequired   = "A password is required"
	MsgPasswordEmpty      = "Please provide a password"
)

// UserValidator validates signup payloads.
//
// The password rules run against the payload after hashing: an empty
// plaintext is never hashed, so it reaches the validator as absent and
// reports MsgPasswordRequired. There is deliberately no length rule.
type UserValidator struct {
	schema Schema[models.UserRequest]
}

// NewUserValidator constructs a [UserValidator] and returns it as the
// [Validator] interface.
func NewUserValidator() Validator {
	validate := validator.New()

	return &UserValidator{
		schema: Schema[models.UserRequest]{
			{
				Name:     "firstName",
				Value:    func(u models.UserRequest) *string { return u.FirstName },
				Required: MsgFirstNameRequired,
				Rules:    []Rule{notEmpty(MsgFirstNameEmpty)},
			},
			{
				Name:     "lastName",
				Value:    func(u models.UserRequest) *string { return u.LastName },
				Required: MsgLastNameRequired,
				Rules:    []Rule{notEmpty(MsgLastNameEmpty)},
			},
			{
				Name:     "emailAddress",
				Value:    func(u models.UserRequest) *string { return u.EmailAddress },
				Required: MsgEmailRequired,
				Rules:    []Rule{isEmail(validate, MsgEmailInvalid)},
			},
			{
				Name:     "password",
				Value:    func(u models.UserRequest) *string { return u.Password },
				Required: MsgPasswordRequired,
				Rules:    []Rule{notEmpty(MsgPasswordEmpty)},
			},
		},
	}
}

// Validate accepts models.UserRequest or *models.UserRequest.
func (v *UserValidator) Validate(_ context.Context, obj any) error {
	var user models.UserRequest
	switch value := obj.(type) {
	case models.UserRequest:
		user = value
	case *models.UserRequest:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if messages := v.schema.Check(user); len(messages) > 0 {
		return &ValidationError{Kind: KindValidation, Messages: messages}
	}
	return nil
}
