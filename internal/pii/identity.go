package pii

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/suryansh-23/piiscan/internal/types"
)

var (
	namePattern       = regexp.MustCompile(`\b[A-Z][A-Za-z]+(?: [A-Z][A-Za-z]+)+\b`)
	creditCardPattern = regexp.MustCompile(`(?:^|\D)(\d{4}-\d{4}-\d{4}-\d{4})`)
	ssnPattern        = regexp.MustCompile(`(?:^|\D)(\d{3}-\d{2}-\d{4})`)
	suffixPattern     = regexp.MustCompile(`^[A-Z][A-Za-z]*$`)
)

// DefaultStreetSuffixes returns the suffix words recognized when none are configured.
func DefaultStreetSuffixes() []string {
	return []string{
		"Street",
		"Avenue",
		"Road",
		"Lane",
		"Drive",
		"Boulevard",
		"Court",
		"Place",
		"Way",
		"Terrace",
		"Circle",
		"Parkway",
		"Highway",
	}
}

// NewNameMatcher detects two or more consecutive capitalized words.
func NewNameMatcher() Matcher {
	return regexMatcher{category: types.CategoryName, re: namePattern}
}

// NewCreditCardMatcher detects DDDD-DDDD-DDDD-DDDD card numbers.
func NewCreditCardMatcher() Matcher {
	return regexMatcher{category: types.CategoryCreditCard, re: creditCardPattern, group: 1, digitBounded: true}
}

// NewSSNMatcher detects DDD-DD-DDDD social security numbers.
func NewSSNMatcher() Matcher {
	return regexMatcher{category: types.CategorySSN, re: ssnPattern, group: 1, digitBounded: true}
}

// NewStreetAddressMatcher detects a house number followed by capitalized
// words ending in one of suffixes.
func NewStreetAddressMatcher(suffixes []string) (Matcher, error) {
	re, err := streetAddressPattern(suffixes)
	if err != nil {
		return nil, err
	}
	return regexMatcher{category: types.CategoryStreetAddress, re: re}, nil
}

func streetAddressPattern(suffixes []string) (*regexp.Regexp, error) {
	if len(suffixes) == 0 {
		return nil, fmt.Errorf("%w: suffix list is empty", ErrInvalidSuffix)
	}
	seen := make(map[string]struct{}, len(suffixes))
	quoted := make([]string, 0, len(suffixes))
	for i, suffix := range suffixes {
		if err := ValidateSuffix(suffix); err != nil {
			return nil, fmt.Errorf("suffix[%d]: %w", i, err)
		}
		if _, ok := seen[suffix]; ok {
			continue
		}
		seen[suffix] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(suffix))
	}
	return regexp.Compile(`\b\d+(?: [A-Z][A-Za-z]+)* (?:` + strings.Join(quoted, "|") + `)\b`)
}

// ValidateSuffix reports whether suffix is a single capitalized alphabetic word.
func ValidateSuffix(suffix string) error {
	if !suffixPattern.MatchString(suffix) {
		return fmt.Errorf("%w: %q must be a capitalized alphabetic word", ErrInvalidSuffix, suffix)
	}
	return nil
}
