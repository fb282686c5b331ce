package vectorsearch

import (
	"context"
	"time"
)

// Service is the caller-facing interface of the search engine.
// It is implemented by the concrete *Engine type.
type Service interface {
	// ExecuteVectorSearch runs a single similarity search and returns one
	// result page. Validation errors (ErrUnknownField, *DimensionError) are
	// raised before any query is issued; datastore failures surface as
	// *StoreError with the driver error unchanged underneath.
	ExecuteVectorSearch(ctx context.Context, req SearchRequest) (*SearchResult, error)

	// SearchMany runs several searches with bounded concurrency. Results are
	// positionally aligned with the requests; the first error aborts the batch.
	SearchMany(ctx context.Context, reqs ...SearchRequest) ([]*SearchResult, error)

	// FieldConfig returns the configuration of a registered vector field.
	FieldConfig(field string) (VectorFieldConfig, bool)

	// IsVectorField reports whether a field is registered for vector search.
	IsVectorField(field string) bool

	// FieldNames returns the registered vector field names in sorted order.
	FieldNames() []string
}

// Store is the raw parameterized query primitive the engine consumes.
// It is implemented by the v1/postgres client. The store is assumed to
// perform standard parameter binding only; the engine never relies on any
// implicit escaping beyond that.
type Store interface {
	RawQuery(ctx context.Context, sql string, args ...any) ([]map[string]any, error)
}

// MetricsRecorder is the slice of the metrics module the engine records to.
// It is satisfied by the v1/metrics Collector; consumers only needing to
// observe searches should not depend on the metric factory methods.
type MetricsRecorder interface {
	// IncrementSearches increments the search counter for a field/outcome pair.
	IncrementSearches(field, status string)

	// RecordSearchDuration records the duration of a search on a field.
	RecordSearchDuration(start time.Time, field string)

	// ObserveSearchRows records the number of rows returned on a search page.
	ObserveSearchRows(count int, field string)
}

// ColumnNamer converts caller-facing field names into column identifiers.
// Every identifier that reaches SQL text passes through Column; ColumnName
// (the unquoted form) is used to read values back out of row mappings. It is
// implemented by the v1/naming transformer.
type ColumnNamer interface {
	// Column returns the quoted column identifier for a field, safe to embed
	// in SQL text.
	Column(field string) string

	// ColumnName returns the unquoted column name for a field.
	ColumnName(field string) string
}
