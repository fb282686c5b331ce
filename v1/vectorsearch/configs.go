package vectorsearch

// Config holds the table-level settings of the search engine.
//
// Example:
//
//	cfg := vectorsearch.DefaultConfig()
//	cfg.Table = "documents"
type Config struct {
	// Table is the table holding the vector columns. Required.
	Table string `yaml:"table" envconfig:"VECTOR_SEARCH_TABLE"`

	// IDField is the caller-facing name of the primary key field used as the
	// keyset tie-breaker. Defaults to "id".
	IDField string `yaml:"id_field" envconfig:"VECTOR_SEARCH_ID_FIELD"`

	// SoftDeleteField names the field whose non-NULL value marks a row as
	// logically deleted. Defaults to "deletedAt".
	SoftDeleteField string `yaml:"soft_delete_field" envconfig:"VECTOR_SEARCH_SOFT_DELETE_FIELD"`

	// DefaultLimit is the page size used when a request does not specify one.
	DefaultLimit int `yaml:"default_limit" envconfig:"VECTOR_SEARCH_DEFAULT_LIMIT"`

	// MaxLimit is the hard cap on the page size.
	MaxLimit int `yaml:"max_limit" envconfig:"VECTOR_SEARCH_MAX_LIMIT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		IDField:         "id",
		SoftDeleteField: "deletedAt",
		DefaultLimit:    10,
		MaxLimit:        100,
	}
}

// WithTable returns a copy of the config targeting the given table.
func (c Config) WithTable(table string) Config {
	c.Table = table
	return c
}

// applyDefaults fills unset fields with the package defaults.
func (c Config) applyDefaults() Config {
	def := DefaultConfig()
	if c.IDField == "" {
		c.IDField = def.IDField
	}
	if c.SoftDeleteField == "" {
		c.SoftDeleteField = def.SoftDeleteField
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = def.DefaultLimit
	}
	if c.MaxLimit <= 0 {
		c.MaxLimit = def.MaxLimit
	}
	return c
}
