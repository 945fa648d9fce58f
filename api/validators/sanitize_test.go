package validators

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeStringTrimsAndKeepsShortInput(t *testing.T) {
	t.Parallel()

	if got := SanitizeString("  Maya Tran  ", 120); got != "Maya Tran" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeString("unbounded", 0); got != "unbounded" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizeStringTruncatesByRunes(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("é", 100)
	got := SanitizeString(input, 33)

	if !utf8.ValidString(got) {
		t.Fatalf("truncated string is invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 33 {
		t.Fatalf("rune count = %d, want 33", n)
	}
}

func TestSanitizeStringMatchesValidatorCounting(t *testing.T) {
	t.Parallel()

	// 100 two-byte runes pass a max=120 tag; sanitization with the same
	// limit must leave them untouched.
	input := strings.Repeat("é", 100)
	if got := SanitizeString(input, 120); got != input {
		t.Fatalf("input within the rune limit was altered: %q", got)
	}
}
