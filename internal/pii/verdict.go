package pii

import (
	"encoding/json"
	"strings"

	"github.com/suryansh-23/piiscan/internal/types"
)

// Verdict records which categories matched a single text.
type Verdict struct {
	mask uint16
}

// NewVerdict returns a verdict with the given categories set. Unknown
// categories are ignored.
func NewVerdict(categories ...types.Category) Verdict {
	var v Verdict
	for _, category := range categories {
		v.set(category)
	}
	return v
}

func (v *Verdict) set(category types.Category) {
	if idx := category.Index(); idx >= 0 {
		v.mask |= 1 << uint(idx)
	}
}

// Has reports whether category matched.
func (v Verdict) Has(category types.Category) bool {
	idx := category.Index()
	return idx >= 0 && v.mask&(1<<uint(idx)) != 0
}

// Any reports whether at least one category matched.
func (v Verdict) Any() bool {
	return v.mask != 0
}

// Categories returns the matched categories in canonical order.
func (v Verdict) Categories() []types.Category {
	var out []types.Category
	for _, category := range types.AllCategories() {
		if v.Has(category) {
			out = append(out, category)
		}
	}
	return out
}

func (v Verdict) String() string {
	cats := v.Categories()
	if len(cats) == 0 {
		return "none"
	}
	parts := make([]string, len(cats))
	for i, category := range cats {
		parts[i] = string(category)
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes the verdict as its matched category list.
func (v Verdict) MarshalJSON() ([]byte, error) {
	cats := v.Categories()
	if cats == nil {
		cats = []types.Category{}
	}
	return json.Marshal(cats)
}
