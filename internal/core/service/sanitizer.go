package service

// Sanitizer normalizes user-supplied free text before it is stored.
type Sanitizer interface {
	Clean(s string) string
	CleanPtr(s *string) *string
}
