package naming

import (
	"github.com/jackc/pgx/v5"
	"gorm.io/gorm/schema"
)

// Transformer converts caller-facing field names to their underlying database
// column identifiers. It is the sole mechanism relied upon for identifier
// safety: every caller-controlled name must pass through Column before being
// placed into SQL text.
type Transformer struct {
	strategy schema.NamingStrategy
}

// NewTransformer returns a Transformer using GORM's default naming strategy
// (camelCase and PascalCase field names map to snake_case columns).
func NewTransformer() *Transformer {
	return &Transformer{
		strategy: schema.NamingStrategy{IdentifierMaxLength: 63},
	}
}

// ColumnName converts a field name to its underlying column name.
//
// Example: "createdAt" -> "created_at", "ownerID" -> "owner_id".
func (t *Transformer) ColumnName(field string) string {
	return t.strategy.ColumnName("", field)
}

// QuoteIdentifier returns the identifier in double-quoted form with any
// embedded quotes escaped, so it can be safely embedded in SQL text.
func (t *Transformer) QuoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// Column transforms a field name and quotes the result. This is the form
// query builders should use for every caller-supplied identifier.
func (t *Transformer) Column(field string) string {
	return t.QuoteIdentifier(t.ColumnName(field))
}
