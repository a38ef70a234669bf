package handler

import (
	"errors"
	"testing"

	"github.com/stratford/music-platform/internal/api/respond"
)

func TestValidator_ISO8601(t *testing.T) {
	v := NewValidator()
	type req struct {
		At string `json:"startTime" validate:"required,iso8601"`
	}

	for _, ok := range []string{"2025-03-01T19:30:00Z", "2025-03-01T19:30:00.123+01:00"} {
		if err := v.Validate(&req{At: ok}); err != nil {
			t.Fatalf("%s: unexpected error %v", ok, err)
		}
	}

	err := v.Validate(&req{At: "01/03/2025"})
	var ve *respond.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Details[0].Field != "startTime" || ve.Details[0].Message != "Start time must be an ISO 8601 date-time" {
		t.Fatalf("unexpected detail: %+v", ve.Details[0])
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{"email": "Email", "venueId": "Venue id", "startTime": "Start time"}
	for in, want := range cases {
		if got := label(in); got != want {
			t.Fatalf("label(%q) = %q, want %q", in, got, want)
		}
	}
}
