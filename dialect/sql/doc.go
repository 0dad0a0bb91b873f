// Package sql provides a dialect.Driver implementation on top of the
// standard database/sql package, plus scheme-based connection string
// resolution for the supported engines.
package sql
