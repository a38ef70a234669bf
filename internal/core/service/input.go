package service

import "github.com/stratford/music-platform/internal/core/domain"

// violations collects fields that passed request validation but came out
// empty after sanitizing.
type violations []domain.FieldViolation

// required flags value when it is present and blank. A nil value is an
// untouched optional field.
func (v *violations) required(field, label string, value *string) {
	if value != nil && *value == "" {
		*v = append(*v, domain.FieldViolation{Field: field, Message: label + " is required"})
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &domain.InvalidInputError{Violations: v}
}

// cleanList sanitizes each entry and drops the ones left blank.
func cleanList(clean Sanitizer, in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if item = clean.Clean(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
