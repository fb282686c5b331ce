package vectorsearch

import "sort"

// Registry is the immutable map of vector field name to field configuration.
// It is constructed once at process start from generated configuration and
// injected into the engine; there is no write API, so concurrent readers need
// no locking.
type Registry struct {
	fields map[string]VectorFieldConfig
}

// NewRegistry builds a registry from the given field configurations.
// A duplicate field name keeps the last config.
func NewRegistry(configs []VectorFieldConfig) *Registry {
	fields := make(map[string]VectorFieldConfig, len(configs))
	for _, fc := range configs {
		fields[fc.FieldName] = fc
	}
	return &Registry{fields: fields}
}

// Get returns the configuration for a field and whether it is registered.
func (r *Registry) Get(field string) (VectorFieldConfig, bool) {
	fc, ok := r.fields[field]
	return fc, ok
}

// Has reports whether a field is registered.
func (r *Registry) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Names returns the registered field names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
