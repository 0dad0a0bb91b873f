// Package schemagen generates Go type definitions from a live database schema.
//
// The schemagen root package defines the error vocabulary shared by the
// introspection and generation packages. The actual pipeline lives in
// dialect/sql/schema (introspection) and gen (rendering and verification).
package schemagen

import (
	"errors"
	"fmt"
)

// DriftNotice is the exact message carried by verify-mode drift failures.
// Callers (and CI scripts) match on this text, so it must stay stable.
const DriftNotice = "schemagen: generated definitions are out of date, re-run verify with log level debug to see the diff"

// Standard sentinel errors for common failure cases.
var (
	// ErrDrift is returned when verify mode finds the target file differs
	// from the freshly generated definitions.
	ErrDrift = errors.New(DriftNotice)

	// ErrNoBaseline is returned when verify mode is requested but the
	// target file does not exist, so there is nothing to compare against.
	ErrNoBaseline = errors.New("schemagen: nothing to verify against")

	// ErrUnsupportedDialect is returned when no adapter exists for the
	// driver's dialect.
	ErrUnsupportedDialect = errors.New("schemagen: unsupported dialect")
)

// DriftError reports a verify-mode mismatch between the persisted
// definitions and the ones generated from the live schema.
type DriftError struct {
	// Path is the target file the candidate was compared against.
	Path string
	// Diff is a unified line diff between the persisted and generated
	// text. It is diagnostic only; the mismatch itself was decided by a
	// byte comparison.
	Diff string
}

// Error returns the fixed drift notice. The diff is intentionally not part
// of the message; it is logged at debug level and available on the struct.
func (e *DriftError) Error() string {
	return DriftNotice
}

// Is reports whether the target matches the drift sentinel, so that
// errors.Is(err, ErrDrift) works on wrapped values.
func (e *DriftError) Is(err error) bool {
	return err == ErrDrift
}

// IsDrift returns true if the error reports schema drift.
func IsDrift(err error) bool {
	if err == nil {
		return false
	}
	var e *DriftError
	return errors.As(err, &e) || errors.Is(err, ErrDrift)
}

// IsNoBaseline returns true if the error reports a missing verify baseline.
func IsNoBaseline(err error) bool {
	return errors.Is(err, ErrNoBaseline)
}

// IntrospectionError wraps a failure while reading the metadata catalog of
// a database, carrying the engine context the bare driver error lacks.
type IntrospectionError struct {
	Dialect string
	Table   string // empty when the failure is not scoped to a table
	Cause   error
}

// Error returns the error string.
func (e *IntrospectionError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("schemagen: inspect %s table %q: %v", e.Dialect, e.Table, e.Cause)
	}
	return fmt.Sprintf("schemagen: inspect %s: %v", e.Dialect, e.Cause)
}

// Unwrap returns the underlying error.
func (e *IntrospectionError) Unwrap() error {
	return e.Cause
}
