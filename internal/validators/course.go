package validators

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

// Course attribute messages.
const (
	MsgTitleRequired       = "A title is required"
	MsgTitleEmpty          = "Please provide a title"
	MsgDescriptionRequired = "A description is required"
	MsgDescriptionEmpty    = "Please provide a description"
)

// CourseValidator validates course create and update payloads. Only title
// and description carry rules; estimatedTime and materialsNeeded are
// optional.
type CourseValidator struct {
	schema Schema[models.CourseRequest]
}

// NewCourseValidator constructs a [CourseValidator] and returns it as the
// [Validator] interface.
func NewCourseValidator() Validator {
	return &CourseValidator{
		schema: Schema[models.CourseRequest]{
			{
				Name:     "title",
				Value:    func(c models.CourseRequest) *string { return c.Title },
				Required: MsgTitleRequired,
				Rules:    []Rule{notEmpty(MsgTitleEmpty)},
			},
			{
				Name:     "description",
				Value:    func(c models.CourseRequest) *string { return c.Description },
				Required: MsgDescriptionRequired,
				Rules:    []Rule{notEmpty(MsgDescriptionEmpty)},
			},
		},
	}
}

// Validate accepts models.CourseRequest or *models.CourseRequest.
func (v *CourseValidator) Validate(_ context.Context, obj any) error {
	var course models.CourseRequest
	switch value := obj.(type) {
	case models.CourseRequest:
		course = value
	case *models.CourseRequest:
		course = *value
	default:
		return ErrUnsupportedType
	}

	if messages := v.schema.Check(course); len(messages) > 0 {
		return &ValidationError{Kind: KindValidation, Messages: messages}
	}
	return nil
}
