package pii

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/suryansh-23/piiscan/internal/types"
)

var (
	ErrUnknownCategory = errors.New("unknown pii category")
	ErrInvalidSuffix   = errors.New("invalid street suffix")
)

// Span is a matched byte range within a text.
type Span struct {
	Start    int
	End      int
	Category types.Category
}

// Matcher detects a single category of PII.
type Matcher interface {
	Category() types.Category
	Match(text string) bool
	Find(text string) []Span
}

// regexMatcher reports every leftmost match of re, narrowed to a capture
// group. With digitBounded set, a group followed by an ASCII digit is part of
// a longer number and is dropped.
type regexMatcher struct {
	category     types.Category
	re           *regexp.Regexp
	group        int
	digitBounded bool
}

func (m regexMatcher) Category() types.Category {
	return m.category
}

func (m regexMatcher) Match(text string) bool {
	if text == "" {
		return false
	}
	if !m.digitBounded {
		return m.re.MatchString(text)
	}
	return len(m.Find(text)) > 0
}

func (m regexMatcher) Find(text string) []Span {
	if text == "" {
		return nil
	}
	var out []Span
	for _, idx := range m.re.FindAllStringSubmatchIndex(text, -1) {
		start, end := captureBounds(idx, m.group)
		if start < 0 || end <= start {
			continue
		}
		if m.digitBounded && end < len(text) && isDigit(text[end]) {
			continue
		}
		out = append(out, Span{Start: start, End: end, Category: m.category})
	}
	return out
}

// wholeMatcher adapts a whole-string predicate to the Matcher interface.
type wholeMatcher struct {
	category types.Category
	accept   func(string) bool
}

func (m wholeMatcher) Category() types.Category {
	return m.category
}

func (m wholeMatcher) Match(text string) bool {
	if text == "" {
		return false
	}
	return m.accept(text)
}

func (m wholeMatcher) Find(text string) []Span {
	if !m.Match(text) {
		return nil
	}
	return []Span{{Start: 0, End: len(text), Category: m.category}}
}

var defaultMatchers = mustDefaultMatchers()

func mustDefaultMatchers() []Matcher {
	matchers, err := NewMatchers(types.AllCategories(), DefaultStreetSuffixes())
	if err != nil {
		panic(fmt.Sprintf("pii: default matchers: %v", err))
	}
	return matchers
}

// DefaultMatchers returns one matcher per category using the default suffix list.
func DefaultMatchers() []Matcher {
	out := make([]Matcher, len(defaultMatchers))
	copy(out, defaultMatchers)
	return out
}

// NewMatchers builds matchers for the given categories in canonical order.
// Duplicate categories are ignored. The suffix list is only consulted when
// street addresses are requested.
func NewMatchers(categories []types.Category, suffixes []string) ([]Matcher, error) {
	want := make(map[types.Category]struct{}, len(categories))
	for _, category := range categories {
		if !category.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
		want[category] = struct{}{}
	}
	out := make([]Matcher, 0, len(want))
	for _, category := range types.AllCategories() {
		if _, ok := want[category]; !ok {
			continue
		}
		m, err := newMatcher(category, suffixes)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func newMatcher(category types.Category, suffixes []string) (Matcher, error) {
	switch category {
	case types.CategoryPhone:
		return NewPhoneMatcher(), nil
	case types.CategoryEmail:
		return NewEmailMatcher(), nil
	case types.CategoryIPv4:
		return NewIPv4Matcher(), nil
	case types.CategoryIPv6:
		return NewIPv6Matcher(), nil
	case types.CategoryName:
		return NewNameMatcher(), nil
	case types.CategoryStreetAddress:
		return NewStreetAddressMatcher(suffixes)
	case types.CategoryCreditCard:
		return NewCreditCardMatcher(), nil
	case types.CategorySSN:
		return NewSSNMatcher(), nil
	case types.CategoryHandle:
		return NewHandleMatcher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// Evaluate runs every matcher against text.
func Evaluate(matchers []Matcher, text string) Verdict {
	var v Verdict
	if text == "" {
		return v
	}
	for _, m := range matchers {
		if m.Match(text) {
			v.set(m.Category())
		}
	}
	return v
}

// FindAll returns spans from every matcher ordered by start offset, then
// by canonical category order.
func FindAll(matchers []Matcher, text string) []Span {
	var out []Span
	for _, m := range matchers {
		out = append(out, m.Find(text)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Category.Index() < out[j].Category.Index()
	})
	return out
}

func captureBounds(submatches []int, group int) (int, int) {
	if group < 0 {
		return -1, -1
	}
	idx := group * 2
	if idx+1 >= len(submatches) {
		return -1, -1
	}
	return submatches[idx], submatches[idx+1]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
