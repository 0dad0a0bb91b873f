// Package dialect provides the database dialect abstraction for schemagen.
//
// Each supported engine is identified by a constant string:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// The Driver interface abstracts the connection used by the schema
// introspector:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The dialect/sql sub-package implements Driver on top of database/sql,
// and dialect/sql/schema holds the per-engine introspection adapters.
package dialect
