package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector provides an interface for collecting and exposing application
// metrics. It abstracts Prometheus metric operations with support for
// counters, histograms, and gauges.
//
// This interface is implemented by the concrete *Metrics type.
type Collector interface {
	// Built-in search metrics

	// IncrementSearches increments the search counter for a field/outcome pair.
	IncrementSearches(field, status string)

	// RecordSearchDuration records the duration of a search on a field.
	RecordSearchDuration(start time.Time, field string)

	// ObserveSearchRows records the number of rows returned on a search page.
	ObserveSearchRows(count int, field string)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
