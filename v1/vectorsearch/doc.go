// Package vectorsearch implements embedding similarity search over a
// pgvector-backed PostgreSQL table, with keyset pagination.
//
// The engine composes a single parameterized query per search: a computed
// raw-distance expression between the query vector and the stored vector
// column, a soft-delete guard, optional equality/membership/null pre-filters,
// an optional similarity threshold, and - on continuation pages - a keyset
// predicate over the composite ordering key (distance ASC, id ASC). One extra
// row is over-fetched to detect whether further pages exist, so no count
// query is ever issued.
//
// Searchable fields are declared up front in a Registry mapping field name to
// {dimension, metric, index hint}. The registry is immutable after startup
// and the engine holds no other process-wide state, so any number of searches
// may run concurrently without coordination.
//
// Cursors encode the {score, id} of the last returned row. The score
// round-trips through the distance converters, so a continuation page
// reproduces the rows strictly after that row in the total order, regardless
// of inserts or deletes in between: already-returned rows are never repeated
// and none are skipped relative to the ordering at query time. The one
// exception is the cosine clamp: distances above 1 all share score 0, so a
// cursor taken there resumes from distance 1 and rows further out may repeat.
//
// Basic usage:
//
//	registry := vectorsearch.NewRegistry([]vectorsearch.VectorFieldConfig{
//		{FieldName: "embedding", Dimension: 1536, Metric: vectorsearch.MetricCosine, IndexType: vectorsearch.IndexHNSW},
//	})
//
//	engine := vectorsearch.NewEngine(registry, db, naming.NewTransformer(),
//		vectorsearch.DefaultConfig().WithTable("documents"))
//
//	page, err := engine.ExecuteVectorSearch(ctx, vectorsearch.SearchRequest{
//		Field:      "embedding",
//		Vector:     queryVector,
//		Pagination: vectorsearch.Pagination{Limit: 20},
//		Threshold:  0.7,
//		Filter:     map[string]any{"status": "active"},
//	})
//	if err != nil {
//		return err
//	}
//	for _, row := range page.Data {
//		// row["_score"] carries the normalized similarity
//	}
//	if page.Pagination.HasMore {
//		next := page.Pagination.Cursor // pass back on the next request
//	}
//
// Error handling: an unregistered field yields ErrUnknownField and a wrong
// vector length yields *DimensionError, both before any query is issued.
// Datastore failures are wrapped in *StoreError with the driver error
// unchanged underneath; the engine never retries.
package vectorsearch
