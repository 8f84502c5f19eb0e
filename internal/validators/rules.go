package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule is a single (predicate, message) pair. Violated receives the
// attribute value, which is never nil: absence is handled by
// [AttributeRules.Required].
type Rule struct {
	Message  string
	Violated func(value string) bool
}

// AttributeRules are the ordered rules of one attribute.
//
// When the attribute is absent only Required is reported and Rules are
// skipped, otherwise every violated rule in Rules is reported in order.
type AttributeRules[T any] struct {
	Name     string
	Value    func(T) *string
	Required string
	Rules    []Rule
}

// Schema is the ordered list of attribute rules of one entity.
type Schema[T any] []AttributeRules[T]

// Check evaluates every rule of the schema against obj and returns the
// messages of the violated ones in declaration order. A nil result means obj
// is valid.
func (s Schema[T]) Check(obj T) []string {
	var messages []string
	for _, attr := range s {
		value := attr.Value(obj)
		if value == nil {
			messages = append(messages, attr.Required)
			continue
		}
		for _, rule := range attr.Rules {
			if rule.Violated(*value) {
				messages = append(messages, rule.Message)
			}
		}
	}
	return messages
}

// notEmpty builds a rule rejecting empty and whitespace-only values.
func notEmpty(message string) Rule {
	return Rule{
		Message: message,
		Violated: func(value string) bool {
			return strings.TrimSpace(value) == ""
		},
	}
}

// isEmail builds a rule rejecting values that are not a syntactically valid
// email address.
func isEmail(validate *validator.Validate, message string) Rule {
	return Rule{
		Message: message,
		Violated: func(value string) bool {
			return validate.Var(value, "required,email") != nil
		},
	}
}
