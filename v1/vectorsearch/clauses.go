package vectorsearch

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// distanceColumn is the alias of the computed raw-distance expression. It is
// internal: the executor strips it from every returned row.
const distanceColumn = "_distance"

// scoreColumn is the key under which the normalized similarity score is
// attached to returned rows.
const scoreColumn = "_score"

// predicateSet accumulates parameterized WHERE fragments together with their
// bound values. Binding a value assigns its placeholder index immediately, so
// no caller ever tracks a shared parameter counter.
//
// The query vector is always parameter $1; every later bind appends to the
// same value list, keeping fragment text and value order in lockstep.
type predicateSet struct {
	fragments []string
	values    []any
}

// newPredicateSet seeds the bound values with the query vector ($1).
func newPredicateSet(vector any) *predicateSet {
	return &predicateSet{values: []any{vector}}
}

// bind appends a value and returns its placeholder ("$2", "$3", ...).
func (p *predicateSet) bind(v any) string {
	p.values = append(p.values, v)
	return "$" + strconv.Itoa(len(p.values))
}

// add appends a completed predicate fragment. Fragments are combined with AND.
func (p *predicateSet) add(fragment string) {
	p.fragments = append(p.fragments, fragment)
}

// where returns the assembled WHERE clause (with leading keyword, empty when
// no predicates exist) and the bound values, query vector first.
func (p *predicateSet) where() (string, []any) {
	if len(p.fragments) == 0 {
		return "", p.values
	}
	return "WHERE " + strings.Join(p.fragments, " AND "), p.values
}

// clauseBuilder assembles the SELECT and WHERE clauses of a search query.
// Every identifier it emits passes through the ColumnNamer; every value is
// bound through the predicateSet. Nothing caller-controlled is ever
// interpolated into SQL text.
type clauseBuilder struct {
	cfg   Config
	namer ColumnNamer
}

// buildWhere composes the search predicates in order: soft-delete guard,
// pre-filters, threshold bound, keyset cursor predicate.
//
// Rows are globally ordered by (raw distance ASC, id ASC) for every metric,
// so the keyset predicate selects exactly the rows strictly after the
// cursor's row in that total order:
//
//	(dist > cursorDist) OR (dist = cursorDist AND id > cursorID)
func (b *clauseBuilder) buildWhere(ps *predicateSet, distExpr string, metric Metric, filter map[string]any, threshold float64, cursor *Cursor) {
	// Logically deleted rows are excluded from every search.
	ps.add(b.namer.Column(b.cfg.SoftDeleteField) + " IS NULL")

	// Pre-filters, in sorted key order so generated SQL is deterministic.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		col := b.namer.Column(key)
		value := filter[key]
		switch {
		case value == nil:
			ps.add(col + " IS NULL")
		case isSliceValue(value):
			ps.add(fmt.Sprintf("%s = ANY(%s)", col, ps.bind(pq.Array(value))))
		default:
			ps.add(fmt.Sprintf("%s = %s", col, ps.bind(value)))
		}
	}

	// Similarity threshold, expressed as a raw distance bound.
	if threshold > 0 {
		bound := ScoreToDistance(threshold, metric)
		ps.add(fmt.Sprintf("%s < %s", distExpr, ps.bind(bound)))
	}

	// Keyset continuation.
	if cursor != nil {
		cursorDist := ScoreToDistance(cursor.Score, metric)
		idCol := b.namer.Column(b.cfg.IDField)
		ps.add(fmt.Sprintf("(%s > %s OR (%s = %s AND %s > %s))",
			distExpr, ps.bind(cursorDist),
			distExpr, ps.bind(cursorDist),
			idCol, ps.bind(cursor.ID),
		))
	}
}

// buildSelect returns the SELECT column list. Callers may restrict the
// returned columns; the id column is forced in because the next-page cursor
// needs it, and the computed distance expression is always appended because
// ordering and cursor generation depend on it.
func (b *clauseBuilder) buildSelect(selects []string, distExpr string) string {
	fields := selects
	if len(fields) == 0 {
		fields = []string{b.cfg.IDField, "createdAt", "updatedAt"}
	} else if !containsField(fields, b.cfg.IDField) {
		fields = append([]string{b.cfg.IDField}, fields...)
	}

	cols := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		cols = append(cols, b.namer.Column(f))
	}
	cols = append(cols, fmt.Sprintf("%s AS %q", distExpr, distanceColumn))
	return strings.Join(cols, ", ")
}

// distanceExpr returns the metric's raw distance between the vector column
// and the query vector ($1).
func (b *clauseBuilder) distanceExpr(field string, metric Metric) string {
	return fmt.Sprintf("%s %s $1", b.namer.Column(field), operatorFor(metric))
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// isSliceValue reports whether a filter value is a slice or array, excluding
// []byte which binds as a single scalar.
func isSliceValue(v any) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
