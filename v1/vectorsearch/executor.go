package vectorsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"golang.org/x/sync/errgroup"

	"github.com/taskory/std/v1/logger"
	"github.com/taskory/std/v1/tracer"
)

// maxConcurrentSearches bounds SearchMany's parallelism.
const maxConcurrentSearches = 10

// Engine executes vector similarity searches against a pgvector-backed table.
//
// Each call performs exactly one parameterized query; there is no internal
// retry, no cross-call state beyond the immutable registry, and cancellation
// is inherited from the caller's context through the store.
type Engine struct {
	registry *Registry
	store    Store
	builder  clauseBuilder
	cfg      Config

	log     *logger.Logger
	metrics MetricsRecorder
	tracer  *tracer.Tracer
}

// Option customizes an Engine beyond its required collaborators.
type Option func(*Engine)

// WithLogger attaches a logger for debug/warning output.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics attaches a metrics recorder for search counts and latency.
func WithMetrics(m MetricsRecorder) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithTracer attaches a tracer that opens a span per search.
func WithTracer(t *tracer.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// NewEngine creates a search engine over the given registry, store, and
// naming transformer. The registry must be fully populated before the first
// call; it is never consulted for writes.
func NewEngine(registry *Registry, store Store, namer ColumnNamer, cfg Config, opts ...Option) *Engine {
	cfg = cfg.applyDefaults()
	e := &Engine{
		registry: registry,
		store:    store,
		builder:  clauseBuilder{cfg: cfg, namer: namer},
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecuteVectorSearch runs one similarity search and returns one result page.
//
// The query orders rows by (raw distance ASC, id ASC) and over-fetches a
// single extra row to detect whether more pages exist, so no count query is
// ever issued. Validation failures are returned before any I/O happens.
func (e *Engine) ExecuteVectorSearch(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if e.tracer == nil {
		return e.executeSearch(ctx, req)
	}

	ctx, span := e.tracer.StartSpan(ctx, "vectorsearch.execute")
	defer span.End()
	e.tracer.SetAttributes(span, map[string]interface{}{
		"search.field": req.Field,
		"search.limit": req.Pagination.Limit,
	})

	res, err := e.executeSearch(ctx, req)
	if err != nil {
		e.tracer.RecordErrorOnSpan(span, err)
	}
	return res, err
}

func (e *Engine) executeSearch(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	start := time.Now()

	fc, ok := e.registry.Get(req.Field)
	if !ok {
		e.observe(req.Field, "invalid", start, 0)
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, req.Field)
	}
	if len(req.Vector) != fc.Dimension {
		e.observe(req.Field, "invalid", start, 0)
		return nil, &DimensionError{Field: req.Field, Want: fc.Dimension, Got: len(req.Vector)}
	}

	limit := e.resolveLimit(req.Pagination.Limit)
	cursor := e.decodeCursor(ctx, req.Pagination.Cursor, fc.Metric)

	distExpr := e.builder.distanceExpr(req.Field, fc.Metric)
	ps := newPredicateSet(pgvector.NewVector(req.Vector))
	e.builder.buildWhere(ps, distExpr, fc.Metric, req.Filter, req.Threshold, cursor)
	selectClause := e.builder.buildSelect(req.Select, distExpr)
	limitPlaceholder := ps.bind(limit + 1)
	whereClause, values := ps.where()

	idCol := e.builder.namer.Column(e.cfg.IDField)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s ASC, %s ASC LIMIT %s",
		selectClause, e.cfg.Table, whereClause, distExpr, idCol, limitPlaceholder)

	if e.log != nil {
		e.log.DebugWithContext(ctx, "Executing vector search", nil, map[string]interface{}{
			"field":      req.Field,
			"metric":     fc.Metric,
			"limit":      limit,
			"has_cursor": cursor != nil,
		})
	}

	rows, err := e.store.RawQuery(ctx, query, values...)
	if err != nil {
		e.observe(req.Field, "error", start, 0)
		return nil, &StoreError{Err: err}
	}

	// Over-fetch detection: the query asked for limit+1 rows, so a full
	// result means at least one more page exists.
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	idKey := e.builder.namer.ColumnName(e.cfg.IDField)
	var lastScore float64
	var lastID string
	for _, row := range rows {
		dist := toFloat64(row[distanceColumn])
		delete(row, distanceColumn)

		score := DistanceToScore(dist, fc.Metric)
		if !req.OmitScore {
			row[scoreColumn] = score
		}
		lastScore = score
		lastID = fmt.Sprint(row[idKey])
	}

	nextCursor := ""
	if hasMore && lastID != "" {
		nextCursor = EncodeCursor(Cursor{Score: lastScore, ID: lastID})
	}

	e.observe(req.Field, "success", start, len(rows))

	return &SearchResult{
		Data: rows,
		Pagination: PageInfo{
			Cursor:  nextCursor,
			HasMore: hasMore,
			Limit:   limit,
		},
		Meta: SearchMeta{
			Field:        req.Field,
			Metric:       fc.Metric,
			Dimension:    fc.Dimension,
			Threshold:    req.Threshold,
			TotalMatches: len(rows),
		},
	}, nil
}

// SearchMany executes several searches with bounded concurrency. Results are
// positionally aligned with the requests. The first failing request cancels
// the rest and its error is returned.
func (e *Engine) SearchMany(ctx context.Context, reqs ...SearchRequest) ([]*SearchResult, error) {
	results := make([]*SearchResult, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := e.ExecuteVectorSearch(ctx, req)
			if err != nil {
				return fmt.Errorf("search %d (field %q): %w", i, req.Field, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FieldConfig returns the configuration of a registered vector field.
func (e *Engine) FieldConfig(field string) (VectorFieldConfig, bool) {
	return e.registry.Get(field)
}

// IsVectorField reports whether a field is registered for vector search.
func (e *Engine) IsVectorField(field string) bool {
	return e.registry.Has(field)
}

// FieldNames returns the registered vector field names in sorted order.
func (e *Engine) FieldNames() []string {
	return e.registry.Names()
}

// resolveLimit applies the default page size and the hard cap.
func (e *Engine) resolveLimit(requested int) int {
	if requested <= 0 {
		return e.cfg.DefaultLimit
	}
	if requested > e.cfg.MaxLimit {
		return e.cfg.MaxLimit
	}
	return requested
}

// decodeCursor parses the request cursor, failing open: malformed input
// restarts pagination from the first page. The restart is logged so cursor
// corruption stays observable. An L2 cursor with a non-positive score is
// rejected the same way, since its distance inverse divides by the score.
func (e *Engine) decodeCursor(ctx context.Context, raw string, metric Metric) *Cursor {
	if raw == "" {
		return nil
	}
	c := DecodeCursor(raw)
	if c == nil {
		if e.log != nil {
			e.log.WarnWithContext(ctx, "Malformed search cursor, restarting pagination", nil, map[string]interface{}{
				"cursor": truncate(raw, 64),
			})
		}
		return nil
	}
	if metric == MetricL2 && c.Score <= 0 {
		if e.log != nil {
			e.log.WarnWithContext(ctx, "Rejecting L2 cursor with non-positive score, restarting pagination", nil, map[string]interface{}{
				"score": c.Score,
			})
		}
		return nil
	}
	return c
}

// observe records the outcome of a search when a collector is attached.
func (e *Engine) observe(field, status string, start time.Time, rows int) {
	if e.metrics == nil {
		return
	}
	e.metrics.IncrementSearches(field, status)
	e.metrics.RecordSearchDuration(start, field)
	if status == "success" {
		e.metrics.ObserveSearchRows(rows, field)
	}
}
