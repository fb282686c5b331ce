package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementSearches increments the search counter for a field with a given outcome.
// Example: metrics.IncrementSearches("embedding", "success")
func (m *Metrics) IncrementSearches(field, status string) {
	m.searchesTotal.WithLabelValues(field, status).Inc()
}

// RecordSearchDuration records the duration (in seconds) of a search on a field.
// Example: defer metrics.RecordSearchDuration(time.Now(), "embedding")
func (m *Metrics) RecordSearchDuration(start time.Time, field string) {
	duration := time.Since(start).Seconds()
	m.searchDuration.WithLabelValues(field).Observe(duration)
}

// ObserveSearchRows records the number of rows returned on a search page.
func (m *Metrics) ObserveSearchRows(count int, field string) {
	m.searchRows.WithLabelValues(field).Observe(float64(count))
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec for resource monitoring.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
