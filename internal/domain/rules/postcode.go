package rules

import (
	"regexp"
	"strings"
)

// UK postcode: one or two letters, a digit, an optional digit or letter,
// optional whitespace, then a digit and two letters excluding C, I, K, M, O
// and V.
var ukPostcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9][0-9A-Z]?\s*[0-9][A-BD-HJLNP-UW-Z]{2}$`)

// IsValidUKPostcode reports whether postcode matches the UK postcode pattern.
// Surrounding whitespace is ignored; the match is case-insensitive.
func IsValidUKPostcode(postcode string) bool {
	trimmed := strings.TrimSpace(postcode)
	if trimmed == "" {
		return false
	}

	return ukPostcodeRe.MatchString(trimmed)
}
