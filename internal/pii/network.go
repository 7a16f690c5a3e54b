package pii

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/suryansh-23/piiscan/internal/types"
)

var (
	ipv4Shape = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	ipv6Shape = regexp.MustCompile(`^[0-9A-Fa-f]{0,4}(?::[0-9A-Fa-f]{0,4})+$`)
)

// Structurally valid IPv4 addresses that never identify a host. The IPv6
// counterpart, the unspecified address, is detected by value in isIPv6.
var reservedIPv4 = map[string]struct{}{
	"0.0.0.0":         {},
	"255.255.255.255": {},
}

const ipv6Hextets = 8

// NewIPv4Matcher matches a whole string holding a dotted-quad address.
func NewIPv4Matcher() Matcher {
	return wholeMatcher{category: types.CategoryIPv4, accept: isIPv4}
}

// NewIPv6Matcher matches a whole string holding a colon-separated address.
func NewIPv6Matcher() Matcher {
	return wholeMatcher{category: types.CategoryIPv6, accept: isIPv6}
}

func isIPv4(text string) bool {
	if !ipv4Shape.MatchString(text) {
		return false
	}
	for _, octet := range strings.Split(text, ".") {
		if !inRange(octet, 0, 255) {
			return false
		}
	}
	_, reserved := reservedIPv4[text]
	return !reserved
}

// isIPv6 accepts exactly eight hextets, or three to eight when at least one
// hextet is empty (compressed). The unspecified address is rejected in every
// spelling: all hextets empty or zero.
func isIPv6(text string) bool {
	if !ipv6Shape.MatchString(text) {
		return false
	}
	groups := strings.Split(text, ":")
	compressed, nonZero := false, false
	for _, group := range groups {
		if group == "" {
			compressed = true
			continue
		}
		if strings.Trim(group, "0") != "" {
			nonZero = true
		}
	}
	if !nonZero {
		return false
	}
	if compressed {
		return len(groups) >= 3 && len(groups) <= ipv6Hextets
	}
	return len(groups) == ipv6Hextets
}

func inRange(digits string, lo, hi int) bool {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	return value >= lo && value <= hi
}
