// Package accesscode derives the 6-digit access code for an email address.
// The code is a weak shared secret: the portfolio owner computes it with
// cmd/codegen and sends it to a visitor out of band, and the server recomputes
// it on every verification attempt. Distinct emails may collide; the code
// space is only one million values.
package accesscode

import (
	"fmt"
	"strings"
)

// Compute returns the access code for email: 6 decimal digits, zero-padded.
//
// The email is normalized (whitespace trimmed, lowercased) before hashing, so
// "Test@Example.com " and "test@example.com" yield the same code. Each code
// point is folded into a 32-bit signed accumulator as h = h*31 + cp; the
// accumulator wraps on overflow. The code is abs(h) mod 1,000,000.
//
// Compute is pure and total: any string, including "", yields a code.
func Compute(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	var h int32
	for _, cp := range normalized {
		h = h*31 + cp
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%06d", v%1_000_000)
}
