// Package naming maps caller-facing field names to database column
// identifiers.
//
// Field names arrive in API casing (camelCase or PascalCase) and are
// converted to snake_case columns using GORM's naming strategy, then quoted
// with pgx's identifier sanitizer. Query builders must route every
// caller-controlled identifier through this package instead of interpolating
// raw strings into SQL.
package naming
