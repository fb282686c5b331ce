package postgres

import (
	"context"

	"gorm.io/gorm"
)

// Client is the interface implemented by *Postgres.
//
// Consumers that only need query execution should depend on a narrower
// interface declared on their side (for example vectorsearch.Store); Client
// exists for components that manage the connection lifecycle as well.
type Client interface {
	// RawQuery executes a parameterized query and returns row mappings.
	RawQuery(ctx context.Context, sql string, args ...any) ([]map[string]any, error)

	// Exec executes a parameterized statement and returns rows affected.
	Exec(ctx context.Context, sql string, args ...any) (int64, error)

	// Transaction runs fn inside a transaction, rolling back on error.
	Transaction(ctx context.Context, fn func(tx *Postgres) error) error

	// DB exposes the underlying GORM handle for advanced use cases.
	DB() *gorm.DB

	// GracefulShutdown stops monitoring and closes the connection pool.
	GracefulShutdown() error
}
