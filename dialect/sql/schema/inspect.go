package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/syssam/schemagen"
	"github.com/syssam/schemagen/dialect"
)

// Adapter normalizes one engine's metadata catalog and value encodings.
// All engine-specific branching lives behind this interface; adapters are
// selected by dialect name through NewAdapter, never by inspecting the
// runtime identity of a connection.
type Adapter interface {
	// Dialect returns the dialect name the adapter serves.
	Dialect() string
	// TableNames returns the base table names of the connected database
	// in a deterministic catalog order.
	TableNames(ctx context.Context, conn dialect.ExecQuerier) ([]string, error)
	// TableColumns returns the columns of the given table in ordinal
	// position order. The returned columns carry the Native type name;
	// normalization is the inspector's job.
	TableColumns(ctx context.Context, conn dialect.ExecQuerier, table string) ([]*Column, error)
	// NormalizeType maps a native type name to its normalized Type.
	// Unmappable types return TypeUnknown.
	NormalizeType(native string) Type
	// EncodeBool returns the engine's physical representation of a
	// boolean value (e.g. int64 0/1 for engines without a boolean type).
	EncodeBool(v bool) any
	// DecodeBool converts the engine's physical representation back to a
	// boolean. DecodeBool(EncodeBool(v)) == v holds for both values.
	DecodeBool(v any) (bool, error)
}

// NewAdapter returns the adapter for the given dialect name.
func NewAdapter(name string) (Adapter, error) {
	switch name {
	case dialect.MySQL:
		return MySQL{}, nil
	case dialect.Postgres:
		return Postgres{}, nil
	case dialect.SQLite:
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", schemagen.ErrUnsupportedDialect, name)
	}
}

// Inspector reads the metadata catalog of a live connection into a Schema.
type Inspector struct {
	conn    dialect.ExecQuerier
	adapter Adapter
	log     *slog.Logger
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithLogger sets the diagnostic sink used for non-fatal findings, such
// as native types with no normalized mapping.
func WithLogger(l *slog.Logger) InspectorOption {
	return func(i *Inspector) {
		i.log = l
	}
}

// NewInspector returns an Inspector for the driver's dialect. It fails if
// no adapter exists for the dialect.
func NewInspector(drv dialect.Driver, opts ...InspectorOption) (*Inspector, error) {
	adapter, err := NewAdapter(drv.Dialect())
	if err != nil {
		return nil, err
	}
	i := &Inspector{conn: drv, adapter: adapter, log: slog.Default()}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Adapter returns the dialect adapter the inspector dispatches through.
func (i *Inspector) Adapter() Adapter {
	return i.adapter
}

// Inspect builds a fresh Schema from the live connection. Repeated calls
// against an unchanged database yield identical content and ordering; the
// inspector keeps no cache between calls.
func (i *Inspector) Inspect(ctx context.Context) (*Schema, error) {
	names, err := i.adapter.TableNames(ctx, i.conn)
	if err != nil {
		return nil, &schemagen.IntrospectionError{Dialect: i.adapter.Dialect(), Cause: err}
	}
	s := &Schema{Tables: make([]*Table, 0, len(names))}
	for _, name := range names {
		columns, err := i.adapter.TableColumns(ctx, i.conn, name)
		if err != nil {
			return nil, &schemagen.IntrospectionError{Dialect: i.adapter.Dialect(), Table: name, Cause: err}
		}
		for _, c := range columns {
			c.Type = i.adapter.NormalizeType(c.Native)
			if c.Type == TypeUnknown {
				i.log.Warn("no normalized mapping for column type",
					"dialect", i.adapter.Dialect(),
					"table", name,
					"column", c.Name,
					"native", c.Native,
				)
			}
		}
		s.Tables = append(s.Tables, &Table{Name: name, Columns: columns})
	}
	return s, nil
}
