package allowlist

import (
	"fmt"
	"path"
	"strings"
)

// List holds glob patterns for records that must never be reported,
// such as documented sample values.
type List struct {
	patterns []string
}

// New validates entries and returns a List. Blank entries are skipped.
func New(entries []string) (*List, error) {
	l := &List{}
	for i, entry := range entries {
		pattern := strings.TrimSpace(entry)
		if pattern == "" {
			continue
		}
		if _, err := path.Match(pattern, "dummy"); err != nil {
			return nil, fmt.Errorf("allowlist entry %d: %w", i, err)
		}
		l.patterns = append(l.patterns, pattern)
	}
	return l, nil
}

// Len returns the number of patterns.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.patterns)
}

// Match reports whether the trimmed record matches any pattern.
// Patterns use path.Match syntax, so '*' does not cross a '/'.
func (l *List) Match(record string) bool {
	if l == nil {
		return false
	}
	record = strings.TrimSpace(record)
	if record == "" {
		return false
	}
	for _, pattern := range l.patterns {
		if ok, _ := path.Match(pattern, record); ok {
			return true
		}
	}
	return false
}
