package accesscode

import (
	"strings"
	"testing"
)

func TestCompute_KnownValues(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "000000"},
		{"a", "000097"},
		{"test@example.com", "876145"},
		{"alice@example.com", "772861"},
		{"bob@example.com", "379442"},
	}
	for _, tt := range tests {
		got := Compute(tt.email)
		if got != tt.want {
			t.Errorf("Compute(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}

func TestCompute_NormalizesCaseAndWhitespace(t *testing.T) {
	want := Compute("test@example.com")
	for _, email := range []string{
		"Test@Example.com ",
		"  TEST@EXAMPLE.COM",
		"\ttest@example.com\n",
	} {
		if got := Compute(email); got != want {
			t.Errorf("Compute(%q) = %q, want %q", email, got, want)
		}
	}
}

func TestCompute_NormalizationIdempotence(t *testing.T) {
	emails := []string{
		"Someone@Example.ORG",
		"  padded@mail.com  ",
		"already@lower.com",
		"",
	}
	for _, email := range emails {
		normalized := strings.ToLower(strings.TrimSpace(email))
		if got, want := Compute(email), Compute(normalized); got != want {
			t.Errorf("Compute(%q) = %q, Compute(normalized %q) = %q; want equal", email, got, normalized, want)
		}
	}
}

func TestCompute_AlwaysSixDigits(t *testing.T) {
	emails := []string{
		"",
		"a",
		"x@y.z",
		"long.address.with.many.characters@some-subdomain.example-domain.com",
		"unicode-ü@example.com",
	}
	for _, email := range emails {
		code := Compute(email)
		if len(code) != 6 {
			t.Fatalf("Compute(%q) = %q, want length 6", email, code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("Compute(%q) = %q, want digits only", email, code)
			}
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	const email = "repeat@example.com"
	first := Compute(email)
	for i := 0; i < 100; i++ {
		if got := Compute(email); got != first {
			t.Fatalf("Compute(%q) returned %q then %q; want stable output", email, first, got)
		}
	}
}
