// Package metrics exposes Prometheus metrics for the search engine.
//
// Each service gets its own isolated registry, wrapped with a constant
// `service` label, and an HTTP server serving /metrics. The package ships
// built-in metrics for vector searches (total count by field and outcome,
// latency, rows per page) plus factories for registering additional
// counters, histograms, and gauges at runtime.
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "vector-search",
//	})
//	go m.Server.ListenAndServe()
//
//	m.IncrementSearches("embedding", "success")
//	defer m.RecordSearchDuration(time.Now(), "embedding")
//
// The FXModule variant starts and stops the HTTP server through fx lifecycle
// hooks and provides both *Metrics and the Collector interface.
package metrics
