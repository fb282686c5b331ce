package vectorsearch

// Metric identifies the distance metric used by a vector field.
type Metric string

const (
	// MetricCosine uses cosine distance (pgvector operator <=>).
	MetricCosine Metric = "Cosine"

	// MetricL2 uses Euclidean distance (pgvector operator <->).
	MetricL2 Metric = "L2"

	// MetricInnerProduct uses negated inner product (pgvector operator <#>).
	MetricInnerProduct Metric = "InnerProduct"
)

// IndexType is advisory metadata describing the index backing a vector field.
// The engine never creates or maintains indexes; index choice belongs to the
// datastore.
type IndexType string

const (
	IndexHNSW    IndexType = "hnsw"
	IndexIVFFlat IndexType = "ivfflat"
)

// VectorFieldConfig describes a single searchable vector field.
// Configs are constructed once at process start and never mutated afterwards.
type VectorFieldConfig struct {
	// FieldName is the caller-facing name of the vector field.
	FieldName string `json:"fieldName" yaml:"field_name"`

	// Dimension is the exact length every query vector must have.
	Dimension int `json:"dimension" yaml:"dimension"`

	// Metric selects the distance operator used for this field.
	Metric Metric `json:"metric" yaml:"metric"`

	// IndexType is advisory only.
	IndexType IndexType `json:"indexType,omitempty" yaml:"index_type,omitempty"`
}

// Cursor is the keyset pagination state: the similarity score and id of the
// last row returned on the previous page. It is opaque to external callers;
// only this package interprets its encoded form.
type Cursor struct {
	Score float64 `json:"score"`
	ID    string  `json:"id"`
}

// Pagination carries the page size and the opaque cursor of a request.
type Pagination struct {
	// Limit is the requested page size. Zero or negative selects the
	// configured default; values above the hard cap are clamped.
	Limit int `json:"limit"`

	// Cursor is the opaque cursor returned by the previous page, or empty
	// for the first page.
	Cursor string `json:"cursor,omitempty"`
}

// SearchRequest describes a single vector similarity search.
type SearchRequest struct {
	// Field is the registered vector field to search.
	Field string `json:"field"`

	// Vector is the query embedding. Its length must equal the registered
	// dimension of Field.
	Vector []float32 `json:"vector"`

	// Pagination controls page size and keyset continuation.
	Pagination Pagination `json:"pagination"`

	// Threshold is an optional similarity cutoff. Only applied when > 0.
	Threshold float64 `json:"threshold,omitempty"`

	// Filter holds pre-filter conditions keyed by field name: scalars become
	// equality predicates, slices become ANY() membership tests, nil becomes
	// IS NULL.
	Filter map[string]any `json:"filter,omitempty"`

	// OmitScore suppresses the _score field on returned rows. The distance
	// is still computed internally for ordering and cursor generation.
	OmitScore bool `json:"omitScore,omitempty"`

	// Select optionally restricts the returned columns. The id column is
	// always included since keyset pagination depends on it.
	Select []string `json:"select,omitempty"`
}

// PageInfo describes the pagination state of a result page.
type PageInfo struct {
	// Cursor is the opaque cursor for the next page; empty on the last page.
	Cursor string `json:"cursor,omitempty"`

	// HasMore reports whether at least one more page exists.
	HasMore bool `json:"hasMore"`

	// Limit is the effective page size after defaulting and clamping.
	Limit int `json:"limit"`
}

// SearchMeta describes the field configuration a search ran against.
type SearchMeta struct {
	Field     string  `json:"field"`
	Metric    Metric  `json:"metric"`
	Dimension int     `json:"dimension"`
	Threshold float64 `json:"threshold,omitempty"`

	// TotalMatches is the number of rows on this page. No count query is
	// issued, so it never reflects the full result set size.
	TotalMatches int `json:"totalMatches"`
}

// SearchResult is the envelope returned by a search. It is produced fresh per
// call and holds no shared state.
type SearchResult struct {
	// Data holds the matching rows in (distance ASC, id ASC) order. Each row
	// carries a "_score" entry unless scoring was suppressed.
	Data []map[string]any `json:"data"`

	Pagination PageInfo   `json:"pagination"`
	Meta       SearchMeta `json:"meta"`
}
