package detect

import (
	"fmt"

	"github.com/suryansh-23/piiscan/internal/config"
	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/types"
)

// Match is a detected PII span.
type Match struct {
	Start    int
	End      int
	Category types.Category
}

// Detector classifies text records.
type Detector interface {
	Classify(text string) pii.Verdict
	Find(text string) []Match
}

// Engine detects PII using the matchers enabled in config.
type Engine struct {
	matchers   []pii.Matcher
	categories []types.Category
}

// NewEngine builds a detector engine from config.
func NewEngine(cfg config.Config) (*Engine, error) {
	matchers, err := pii.NewMatchers(cfg.Categories, cfg.StreetSuffixes)
	if err != nil {
		return nil, fmt.Errorf("build matchers: %w", err)
	}
	engine := &Engine{matchers: matchers}
	for _, m := range matchers {
		engine.categories = append(engine.categories, m.Category())
	}
	return engine, nil
}

// Categories returns the enabled categories in canonical order.
func (e *Engine) Categories() []types.Category {
	out := make([]types.Category, len(e.categories))
	copy(out, e.categories)
	return out
}

// Classify returns the verdict for text.
func (e *Engine) Classify(text string) pii.Verdict {
	return pii.Evaluate(e.matchers, text)
}

// Find returns match spans within text.
func (e *Engine) Find(text string) []Match {
	spans := pii.FindAll(e.matchers, text)
	if len(spans) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(spans))
	for _, span := range spans {
		matches = append(matches, Match{Start: span.Start, End: span.End, Category: span.Category})
	}
	return matches
}

// NoopDetector performs no detection.
type NoopDetector struct{}

// Classify returns an empty verdict.
func (NoopDetector) Classify(string) pii.Verdict {
	return pii.Verdict{}
}

// Find returns no matches.
func (NoopDetector) Find(string) []Match {
	return nil
}
