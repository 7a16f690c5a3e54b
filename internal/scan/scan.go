// Package scan classifies batches of text records concurrently and
// summarizes the verdicts in a report.
package scan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/suryansh-23/piiscan/internal/allowlist"
	"github.com/suryansh-23/piiscan/internal/cache"
	"github.com/suryansh-23/piiscan/internal/debug"
	"github.com/suryansh-23/piiscan/internal/detect"
	"github.com/suryansh-23/piiscan/internal/metrics"
	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/records"
	"github.com/suryansh-23/piiscan/internal/types"
)

const defaultWorkers = 4

// Result is the verdict for one record. Index is the position among the
// scanned records; Line is the record's line in its source.
type Result struct {
	Index   int         `json:"index"`
	Line    int         `json:"line"`
	Verdict pii.Verdict `json:"categories"`
	Allowed bool        `json:"allowed,omitempty"`
}

// Report summarizes a scan. Results are in record order.
type Report struct {
	RunID    string                 `json:"run_id"`
	Started  time.Time              `json:"started"`
	Duration time.Duration          `json:"duration_ns"`
	Total    int                    `json:"total"`
	Flagged  int                    `json:"flagged"`
	Allowed  int                    `json:"allowed"`
	Counts   map[types.Category]int `json:"counts"`
	Results  []Result               `json:"results"`
}

// FlaggedResults returns the results with at least one category.
func (r Report) FlaggedResults() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Verdict.Any() {
			out = append(out, res)
		}
	}
	return out
}

// Scanner fans records out to a bounded worker pool.
type Scanner struct {
	detector detect.Detector
	workers  int
	cache    *cache.Cache
	allow    *allowlist.List
	metrics  *metrics.Metrics
	logger   *debug.Logger
	now      func() time.Time
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers bounds concurrent classification.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithCache memoizes verdicts for repeated records.
func WithCache(c *cache.Cache) Option {
	return func(s *Scanner) { s.cache = c }
}

// WithAllowlist marks matching records as allowed instead of classifying them.
func WithAllowlist(l *allowlist.List) Option {
	return func(s *Scanner) { s.allow = l }
}

// WithMetrics records per-record metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scanner) { s.metrics = m }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *debug.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// New returns a Scanner using detector.
func New(detector detect.Detector, opts ...Option) *Scanner {
	if detector == nil {
		detector = detect.NoopDetector{}
	}
	s := &Scanner{
		detector: detector,
		workers:  defaultWorkers,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run classifies every record. It stops early and returns the context error
// when ctx is cancelled.
func (s *Scanner) Run(ctx context.Context, recs []records.Record) (Report, error) {
	started := s.now()
	runID := uuid.NewString()
	s.logger.Debugw("scan started", "run_id", runID, "records", len(recs), "workers", s.workers)

	results := make([]Result, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, rec := range recs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.classify(i, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:   runID,
		Started: started,
		Total:   len(recs),
		Counts:  make(map[types.Category]int),
		Results: results,
	}
	for _, res := range results {
		if res.Allowed {
			report.Allowed++
		}
		if !res.Verdict.Any() {
			continue
		}
		report.Flagged++
		for _, category := range res.Verdict.Categories() {
			report.Counts[category]++
		}
	}
	report.Duration = s.now().Sub(started)
	hits, misses := s.cache.Stats()
	s.logger.Debugw("scan finished", "run_id", runID, "flagged", report.Flagged, "allowed", report.Allowed,
		"cache_hits", hits, "cache_misses", misses)
	return report, nil
}

func (s *Scanner) classify(index int, rec records.Record) Result {
	res := Result{Index: index, Line: rec.Line}
	if s.allow.Match(rec.Text) {
		s.metrics.ObserveAllowed()
		s.logger.Debugw("record allowlisted", "line", rec.Line)
		res.Allowed = true
		return res
	}
	if verdict, ok := s.cache.Get(rec.Text); ok {
		s.metrics.ObserveVerdict(verdict, 0, true)
		res.Verdict = verdict
		return res
	}
	start := time.Now()
	verdict := s.detector.Classify(rec.Text)
	s.metrics.ObserveVerdict(verdict, time.Since(start), false)
	s.cache.Put(rec.Text, verdict)
	if verdict.Any() {
		s.logger.Debugw("record flagged", "line", rec.Line, "categories", verdict.String())
	}
	res.Verdict = verdict
	return res
}
