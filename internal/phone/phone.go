// Package phone coerces free-form phone input into a dialable E.164-style string.
package phone

import "strings"

// Normalize is total: it never fails, it only produces a best-guess number.
// Rules, in order: 11 digits with a leading 1 get a "+"; exactly 10 digits get
// "+1"; input that already starts with "+" is returned untouched; anything
// else gets "+1" prefixed to whatever digits remain. The voice provider is the
// final arbiter of whether the result is dialable.
func Normalize(raw string) string {
	digits := stripNonDigits(raw)

	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case len(digits) == 10:
		return "+1" + digits
	case strings.HasPrefix(raw, "+"):
		return raw
	default:
		return "+1" + digits
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
