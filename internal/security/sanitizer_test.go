package security

import (
	"strings"
	"testing"
)

func TestTextSanitizer_Clean(t *testing.T) {
	s := NewTextSanitizer()

	cases := []struct {
		in, want string
	}{
		{"  The Jazz Room  ", "The Jazz Room"},
		{"<b>Bold</b> night", "Bold night"},
		{"Rock & Roll", "Rock & Roll"},
		{`<script>alert(1)</script>Open mic`, "Open mic"},
		{"", ""},
		{"   ", ""},
		{"<b></b>", ""},
		{"a < b", "a < b"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"&lt;b&gt;Bold&lt;/b&gt; night", "Bold night"},
		{"&amp;lt;img src=x onerror=alert(1)&amp;gt;Gig", "Gig"},
	}
	for _, tc := range cases {
		if got := s.Clean(tc.in); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextSanitizer_CleanPtr(t *testing.T) {
	s := NewTextSanitizer()

	if s.CleanPtr(nil) != nil {
		t.Fatal("expected nil to stay nil")
	}
	in := " <i>bio</i> "
	out := s.CleanPtr(&in)
	if out == nil || *out != "bio" {
		t.Fatalf("unexpected result: %v", out)
	}
}

func TestTextSanitizer_CleanIsStable(t *testing.T) {
	s := NewTextSanitizer()

	for _, in := range []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&amp;amp;lt;i&amp;amp;gt;deep",
		"Fish &amp; Chips",
		"<p>Open &lt;mic&gt;</p>",
	} {
		once := s.Clean(in)
		if strings.ContainsAny(once, "<>") {
			t.Errorf("Clean(%q) = %q still carries markup", in, once)
		}
		if twice := s.Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
