// Package security holds input hardening shared by the services.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer strips all markup from user-supplied free text. Venue, event
// and profile fields are rendered as plain text, so no element survives.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a sanitizer backed by bluemonday's strict policy.
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// maxCleanPasses bounds how many layers of entity escaping Clean unwraps.
const maxCleanPasses = 8

// Clean trims s and removes any HTML. Entities are decoded only when the
// decoded text sanitizes to itself, so "Rock & Roll" is stored as typed
// while escaped markup such as "&lt;b&gt;" is unwrapped and stripped.
// Text that is still changing after maxCleanPasses is returned in its
// sanitized, escaped form.
func (s *TextSanitizer) Clean(in string) string {
	cur := strings.TrimSpace(in)
	for i := 0; i < maxCleanPasses; i++ {
		if cur == "" {
			return ""
		}
		sanitized := s.policy.Sanitize(cur)
		decoded := strings.TrimSpace(html.UnescapeString(sanitized))
		if decoded == cur {
			return cur
		}
		cur = decoded
	}
	return strings.TrimSpace(s.policy.Sanitize(cur))
}

// CleanPtr applies Clean to an optional field, preserving nil.
func (s *TextSanitizer) CleanPtr(in *string) *string {
	if in == nil {
		return nil
	}
	out := s.Clean(*in)
	return &out
}
