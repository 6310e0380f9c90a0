// Package quantity pulls a kilogram amount out of loosely written input such
// as "1 kg", "2 किलो" or "1.5".
package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// DefaultKg is returned when the input carries no number.
const DefaultKg = 10.0

// Digits from any script count, so "२ किलो" reads as 2.
var numberPattern = regexp.MustCompile(`\p{Nd}+(?:\.\p{Nd}+)?`)

// Extract returns the first unsigned decimal number in s. Unit words are not
// interpreted: every number is taken to be kilograms.
func Extract(s string) float64 {
	token := numberPattern.FindString(s)
	if token == "" {
		return DefaultKg
	}
	v, err := strconv.ParseFloat(toASCII(token), 64)
	if err != nil || math.IsInf(v, 0) {
		return DefaultKg
	}
	return v
}

// toASCII rewrites decimal digits of any script to 0-9. Unicode allocates Nd
// characters in runs of ten starting at zero, and adjacent runs stay aligned.
func toASCII(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if r == '.' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		start := r
		for unicode.Is(unicode.Nd, start-1) {
			start--
		}
		b.WriteRune('0' + (r-start)%10)
	}
	return b.String()
}
