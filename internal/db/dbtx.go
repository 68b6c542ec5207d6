package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB the entry store and repositories depend on.
// Taking the interface instead of the concrete handle keeps them testable
// against any query executor.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ DBTX = (*sql.DB)(nil)
