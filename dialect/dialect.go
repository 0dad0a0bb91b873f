package dialect

import "context"

// Dialect names of the supported database engines.
const (
	// MySQL dialect.
	MySQL = "mysql"
	// Postgres dialect.
	Postgres = "postgres"
	// SQLite dialect.
	SQLite = "sqlite"
)

// ExecQuerier wraps the two standard database operations.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows. For example,
	// in SQL, INSERT or UPDATE. It scans the result into v.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a statement that returns rows, typically a SELECT.
	// It scans the result into v.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the minimal interface a database connection must provide to
// the introspection and generation pipeline. Each invocation owns its
// driver exclusively; drivers hold no pipeline state.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transaction behavior on top of ExecQuerier.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
