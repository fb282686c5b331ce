package postgres

import (
	"context"

	"gorm.io/gorm"
)

// RawQuery executes a parameterized SQL query and returns the result set as a
// sequence of row mappings (column name -> value). Parameters are bound by the
// driver; no escaping beyond standard parameter binding is performed.
//
// Example:
//
//	rows, err := db.RawQuery(ctx,
//	    `SELECT id, title FROM documents WHERE owner_id = $1 LIMIT $2`,
//	    ownerID, 20,
//	)
func (p *Postgres) RawQuery(ctx context.Context, sql string, args ...any) ([]map[string]any, error) {
	var rows []map[string]any
	if err := p.DB().WithContext(ctx).Raw(sql, args...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Exec executes a parameterized statement that returns no rows and reports the
// number of rows affected.
func (p *Postgres) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	result := p.DB().WithContext(ctx).Exec(sql, args...)
	return result.RowsAffected, result.Error
}

// Transaction executes the given function within a database transaction.
// If the function returns an error, the transaction is rolled back; otherwise
// it is committed.
//
// Example:
//
//	err := pg.Transaction(ctx, func(tx *Postgres) error {
//	    if _, err := tx.Exec(ctx, stmt1, a); err != nil {
//	        return err
//	    }
//	    _, err := tx.Exec(ctx, stmt2, b)
//	    return err
//	})
func (p *Postgres) Transaction(ctx context.Context, fn func(tx *Postgres) error) error {
	return p.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txPg := &Postgres{
			cfg:             p.cfg,
			shutdownSignal:  p.shutdownSignal,
			retryChanSignal: p.retryChanSignal,
		}
		txPg.client.Store(tx)
		return fn(txPg)
	})
}
