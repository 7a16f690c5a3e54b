// Package metrics records scan activity as prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/types"
)

const namespace = "piiscan"

// Metrics owns a private registry so repeated scans in one process do not
// collide on the default registerer.
type Metrics struct {
	registry *prometheus.Registry

	Records         prometheus.Counter
	Flagged         prometheus.Counter
	Allowed         prometheus.Counter
	CacheHits       prometheus.Counter
	CategoryMatches *prometheus.CounterVec
	ClassifyLatency prometheus.Histogram
}

// New registers the scan metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records classified.",
		}),
		Flagged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_flagged_total",
			Help:      "Records with at least one PII category.",
		}),
		Allowed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_allowed_total",
			Help:      "Records skipped by the allowlist.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Verdicts served from the cache.",
		}),
		CategoryMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_matches_total",
			Help:      "Records matching each PII category.",
		}, []string{"category"}),
		ClassifyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classify_duration_seconds",
			Help:      "Time spent classifying a single record.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.Records, m.Flagged, m.Allowed, m.CacheHits, m.CategoryMatches, m.ClassifyLatency)
	for _, category := range types.AllCategories() {
		m.CategoryMatches.WithLabelValues(string(category))
	}
	return m
}

// Registry exposes the underlying gatherer.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveVerdict records one classified record.
func (m *Metrics) ObserveVerdict(v pii.Verdict, elapsed time.Duration, cached bool) {
	if m == nil {
		return
	}
	m.Records.Inc()
	if cached {
		m.CacheHits.Inc()
	} else {
		m.ClassifyLatency.Observe(elapsed.Seconds())
	}
	if !v.Any() {
		return
	}
	m.Flagged.Inc()
	for _, category := range v.Categories() {
		m.CategoryMatches.WithLabelValues(string(category)).Inc()
	}
}

// ObserveAllowed records one allowlisted record.
func (m *Metrics) ObserveAllowed() {
	if m == nil {
		return
	}
	m.Records.Inc()
	m.Allowed.Inc()
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
