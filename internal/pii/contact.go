package pii

import (
	"regexp"

	"github.com/suryansh-23/piiscan/internal/types"
)

var (
	// area code, exchange and line number, hyphens only.
	phonePattern = regexp.MustCompile(`(?:^|\D)(\d{3}-\d{3}-\d{4})`)

	emailPattern = regexp.MustCompile(`[^\s@]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+`)

	// RE2 has no lookbehind, so the preceding character is consumed and the
	// handle itself is reported through group 1. Any letter, digit or
	// underscore before the @ (non-ASCII included) makes it part of a word.
	handlePattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(@\w+)`)
)

// NewPhoneMatcher detects US phone numbers of the form DDD-DDD-DDDD.
func NewPhoneMatcher() Matcher {
	return regexMatcher{category: types.CategoryPhone, re: phonePattern, group: 1, digitBounded: true}
}

// NewEmailMatcher detects local@domain.tld addresses.
func NewEmailMatcher() Matcher {
	return regexMatcher{category: types.CategoryEmail, re: emailPattern}
}

// NewHandleMatcher detects @handle mentions that are not part of an email.
func NewHandleMatcher() Matcher {
	return regexMatcher{category: types.CategoryHandle, re: handlePattern, group: 1}
}
