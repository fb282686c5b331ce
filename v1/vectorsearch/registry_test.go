package vectorsearch

import (
	"reflect"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry([]VectorFieldConfig{
		{FieldName: "titleEmbedding", Dimension: 768, Metric: MetricCosine, IndexType: IndexHNSW},
		{FieldName: "bodyEmbedding", Dimension: 1536, Metric: MetricL2, IndexType: IndexIVFFlat},
	})

	fc, ok := reg.Get("titleEmbedding")
	if !ok {
		t.Fatal("expected titleEmbedding to be registered")
	}
	if fc.Dimension != 768 || fc.Metric != MetricCosine {
		t.Errorf("unexpected config: %+v", fc)
	}

	if _, ok := reg.Get("missing"); ok {
		t.Error("Get should report false for an unregistered field")
	}
	if reg.Has("missing") {
		t.Error("Has should report false for an unregistered field")
	}
	if !reg.Has("bodyEmbedding") {
		t.Error("Has should report true for a registered field")
	}
}

func TestRegistryDuplicateKeepsLast(t *testing.T) {
	reg := NewRegistry([]VectorFieldConfig{
		{FieldName: "embedding", Dimension: 384, Metric: MetricCosine},
		{FieldName: "embedding", Dimension: 768, Metric: MetricInnerProduct},
	})

	fc, ok := reg.Get("embedding")
	if !ok {
		t.Fatal("expected embedding to be registered")
	}
	if fc.Dimension != 768 || fc.Metric != MetricInnerProduct {
		t.Errorf("duplicate registration should keep the last config, got %+v", fc)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry([]VectorFieldConfig{
		{FieldName: "zeta", Dimension: 4},
		{FieldName: "alpha", Dimension: 4},
		{FieldName: "mid", Dimension: 4},
	})

	want := []string{"alpha", "mid", "zeta"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryEmpty(t *testing.T) {
	reg := NewRegistry(nil)
	if names := reg.Names(); len(names) != 0 {
		t.Errorf("empty registry should have no names, got %v", names)
	}
	if reg.Has("anything") {
		t.Error("empty registry should not report any field")
	}
}
