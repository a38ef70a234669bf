package respond

import (
	"strings"

	"github.com/stratford/music-platform/internal/core/domain"
)

// ValidationError carries the rejected fields of a request. The error
// handler renders it as 400 "Validation failed" with details.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// fromViolations converts domain field violations into request details.
func fromViolations(vs []domain.FieldViolation) *ValidationError {
	details := make([]FieldError, 0, len(vs))
	for _, v := range vs {
		details = append(details, FieldError{Field: v.Field, Message: v.Message})
	}
	return &ValidationError{Details: details}
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Details: []FieldError{{Field: field, Message: msg}}}
}
