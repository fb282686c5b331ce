package vectorsearch

import (
	"reflect"
	"strings"
	"testing"

	"github.com/taskory/std/v1/naming"
)

func newTestBuilder() *clauseBuilder {
	return &clauseBuilder{cfg: DefaultConfig(), namer: naming.NewTransformer()}
}

func TestPredicateSetPlaceholderOrder(t *testing.T) {
	ps := newPredicateSet("query-vector")

	if got := ps.bind("a"); got != "$2" {
		t.Errorf("first bind after the vector should be $2, got %s", got)
	}
	if got := ps.bind("b"); got != "$3" {
		t.Errorf("second bind should be $3, got %s", got)
	}

	_, values := ps.where()
	want := []any{"query-vector", "a", "b"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestPredicateSetEmptyWhere(t *testing.T) {
	ps := newPredicateSet("v")
	clause, values := ps.where()
	if clause != "" {
		t.Errorf("no fragments should yield an empty clause, got %q", clause)
	}
	if len(values) != 1 {
		t.Errorf("values should hold only the vector, got %v", values)
	}
}

func TestBuildWhere_SoftDeleteGuardAlwaysFirst(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	b.buildWhere(ps, b.distanceExpr("embedding", MetricCosine), MetricCosine, nil, 0, nil)

	clause, values := ps.where()
	if clause != `WHERE "deleted_at" IS NULL` {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(values) != 1 {
		t.Errorf("soft-delete guard should bind no values, got %v", values)
	}
}

func TestBuildWhere_FilterKinds(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	filter := map[string]any{
		"status":     "active",
		"ownerID":    []string{"u1", "u2"},
		"archivedAt": nil,
	}
	b.buildWhere(ps, b.distanceExpr("embedding", MetricCosine), MetricCosine, filter, 0, nil)

	clause, values := ps.where()

	// Keys are emitted in sorted order: archivedAt, ownerID, status.
	wantClause := `WHERE "deleted_at" IS NULL` +
		` AND "archived_at" IS NULL` +
		` AND "owner_id" = ANY($2)` +
		` AND "status" = $3`
	if clause != wantClause {
		t.Errorf("clause = %q, want %q", clause, wantClause)
	}
	if len(values) != 3 {
		t.Fatalf("expected vector + two bound values, got %v", values)
	}
	if values[2] != "active" {
		t.Errorf("scalar filter value should be bound last, got %v", values[2])
	}
}

func TestBuildWhere_ByteSliceFilterBindsAsScalar(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	b.buildWhere(ps, b.distanceExpr("embedding", MetricCosine), MetricCosine,
		map[string]any{"digest": []byte{0x01, 0x02}}, 0, nil)

	clause, _ := ps.where()
	if strings.Contains(clause, "ANY(") {
		t.Errorf("[]byte must bind as a scalar, got clause %q", clause)
	}
	if !strings.Contains(clause, `"digest" = $2`) {
		t.Errorf("expected scalar equality on digest, got %q", clause)
	}
}

func TestBuildWhere_ThresholdBindsDistanceBound(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	dist := b.distanceExpr("embedding", MetricCosine)
	b.buildWhere(ps, dist, MetricCosine, nil, 0.8, nil)

	clause, values := ps.where()
	if !strings.Contains(clause, `"embedding" <=> $1 < $2`) {
		t.Errorf("threshold fragment missing, clause = %q", clause)
	}
	bound, ok := values[1].(float64)
	if !ok {
		t.Fatalf("threshold bound should be float64, got %T", values[1])
	}
	if diff := bound - 0.2; diff > floatTolerance || diff < -floatTolerance {
		t.Errorf("cosine score 0.8 should bind distance 0.2, got %v", bound)
	}
}

func TestBuildWhere_ZeroThresholdIsSkipped(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	b.buildWhere(ps, b.distanceExpr("embedding", MetricCosine), MetricCosine, nil, 0, nil)

	clause, _ := ps.where()
	if strings.Contains(clause, "<=> $1 <") {
		t.Errorf("zero threshold must not emit a bound, clause = %q", clause)
	}
}

func TestBuildWhere_KeysetPredicate(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	dist := b.distanceExpr("embedding", MetricCosine)
	cursor := &Cursor{Score: 0.8, ID: "row-b"}
	b.buildWhere(ps, dist, MetricCosine, nil, 0, cursor)

	clause, values := ps.where()
	want := `("embedding" <=> $1 > $2 OR ("embedding" <=> $1 = $3 AND "id" > $4))`
	if !strings.Contains(clause, want) {
		t.Errorf("keyset fragment missing:\n  clause: %q\n  want:   %q", clause, want)
	}

	// Both distance placeholders bind the same converted cursor distance.
	if values[1] != values[2] {
		t.Errorf("cursor distance bound twice with different values: %v vs %v", values[1], values[2])
	}
	if values[3] != "row-b" {
		t.Errorf("cursor id should be the last bound value, got %v", values[3])
	}
}

func TestBuildWhere_FullCompositionOrder(t *testing.T) {
	b := newTestBuilder()
	ps := newPredicateSet("v")
	dist := b.distanceExpr("embedding", MetricL2)
	b.buildWhere(ps, dist, MetricL2, map[string]any{"status": "done"}, 0.5, &Cursor{Score: 0.25, ID: "x"})

	clause, values := ps.where()

	// soft delete, filter, threshold, keyset - in that order.
	order := []string{`"deleted_at" IS NULL`, `"status" = $2`, `<-> $1 < $3`, `<-> $1 > $4`}
	pos := -1
	for _, frag := range order {
		next := strings.Index(clause, frag)
		if next < 0 {
			t.Fatalf("fragment %q missing from clause %q", frag, clause)
		}
		if next < pos {
			t.Errorf("fragment %q out of order in clause %q", frag, clause)
		}
		pos = next
	}

	// vector, status, threshold bound, cursor dist x2, cursor id.
	if len(values) != 6 {
		t.Errorf("expected 6 bound values, got %d: %v", len(values), values)
	}
}

func TestBuildSelect_Defaults(t *testing.T) {
	b := newTestBuilder()
	dist := b.distanceExpr("embedding", MetricCosine)
	got := b.buildSelect(nil, dist)

	want := `"id", "created_at", "updated_at", "embedding" <=> $1 AS "_distance"`
	if got != want {
		t.Errorf("buildSelect(nil) = %q, want %q", got, want)
	}
}

func TestBuildSelect_CustomColumnsForceID(t *testing.T) {
	b := newTestBuilder()
	dist := b.distanceExpr("embedding", MetricCosine)
	got := b.buildSelect([]string{"title", "publishedAt"}, dist)

	want := `"id", "title", "published_at", "embedding" <=> $1 AS "_distance"`
	if got != want {
		t.Errorf("buildSelect = %q, want %q", got, want)
	}
}

func TestBuildSelect_IDNotDuplicated(t *testing.T) {
	b := newTestBuilder()
	dist := b.distanceExpr("embedding", MetricCosine)
	got := b.buildSelect([]string{"id", "title"}, dist)

	if strings.Count(got, `"id"`) != 1 {
		t.Errorf("id should appear exactly once, got %q", got)
	}
}

func TestDistanceExpr_PerMetric(t *testing.T) {
	b := newTestBuilder()
	cases := []struct {
		metric Metric
		want   string
	}{
		{MetricCosine, `"title_embedding" <=> $1`},
		{MetricL2, `"title_embedding" <-> $1`},
		{MetricInnerProduct, `"title_embedding" <#> $1`},
	}
	for _, c := range cases {
		if got := b.distanceExpr("titleEmbedding", c.metric); got != c.want {
			t.Errorf("distanceExpr(%s) = %q, want %q", c.metric, got, c.want)
		}
	}
}
