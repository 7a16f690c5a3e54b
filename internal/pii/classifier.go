// Package pii detects personally identifiable information in short text
// fragments. Each category has an independent Matcher; a Classifier wraps a
// single text and answers one query per category plus an aggregate.
package pii

import "github.com/suryansh-23/piiscan/internal/types"

// Classifier answers PII queries for one text value.
type Classifier struct {
	text     string
	matchers []Matcher
}

// New wraps text with the default matchers.
func New(text string) *Classifier {
	return &Classifier{text: text, matchers: defaultMatchers}
}

// Text returns the wrapped text.
func (c *Classifier) Text() string {
	return c.text
}

// HasPhone reports a DDD-DDD-DDDD phone number anywhere in the text.
func (c *Classifier) HasPhone() bool { return c.Has(types.CategoryPhone) }

// HasEmail reports a local@domain.tld address anywhere in the text.
func (c *Classifier) HasEmail() bool { return c.Has(types.CategoryEmail) }

// HasIPv4 reports whether the whole text is a usable dotted-quad address.
func (c *Classifier) HasIPv4() bool { return c.Has(types.CategoryIPv4) }

// HasIPv6 reports whether the whole text is a colon-separated address other
// than the unspecified address.
func (c *Classifier) HasIPv6() bool { return c.Has(types.CategoryIPv6) }

// HasName reports two or more consecutive capitalized words.
func (c *Classifier) HasName() bool { return c.Has(types.CategoryName) }

// HasStreetAddress reports a house number, capitalized words and a street suffix.
func (c *Classifier) HasStreetAddress() bool { return c.Has(types.CategoryStreetAddress) }

// HasCreditCard reports a DDDD-DDDD-DDDD-DDDD card number.
func (c *Classifier) HasCreditCard() bool { return c.Has(types.CategoryCreditCard) }

// HasSSN reports a DDD-DD-DDDD social security number.
func (c *Classifier) HasSSN() bool { return c.Has(types.CategorySSN) }

// HasHandle reports an @handle that does not follow a letter, digit or underscore.
func (c *Classifier) HasHandle() bool { return c.Has(types.CategoryHandle) }

// HasAnyPII reports whether any category query is true.
func (c *Classifier) HasAnyPII() bool {
	for _, category := range types.AllCategories() {
		if c.Has(category) {
			return true
		}
	}
	return false
}

// Has runs the matcher for category.
func (c *Classifier) Has(category types.Category) bool {
	if c == nil || c.text == "" {
		return false
	}
	for _, m := range c.matchers {
		if m.Category() == category {
			return m.Match(c.text)
		}
	}
	return false
}

// Verdict evaluates every category at once.
func (c *Classifier) Verdict() Verdict {
	if c == nil {
		return Verdict{}
	}
	return Evaluate(c.matchers, c.text)
}

// Categories returns the matched categories in canonical order.
func (c *Classifier) Categories() []types.Category {
	return c.Verdict().Categories()
}

// Spans returns every matched range in the text.
func (c *Classifier) Spans() []Span {
	if c == nil {
		return nil
	}
	return FindAll(c.matchers, c.text)
}
