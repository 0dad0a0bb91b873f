// Package schema introspects the tables and columns of a live database
// into a normalized, engine-independent model.
package schema

// Type is the normalized column type vocabulary shared by all dialects.
// Every native column type maps to exactly one Type; native types with no
// mapping degrade to TypeUnknown instead of failing introspection.
type Type uint8

// Normalized column types.
const (
	TypeUnknown Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeTime
	TypeJSON
	TypeBytes
	endTypes
)

var typeNames = [endTypes]string{
	TypeUnknown: "unknown",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeTime:    "time",
	TypeJSON:    "json",
	TypeBytes:   "bytes",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return "invalid"
}

// Valid reports if the given type is a known normalized type.
func (t Type) Valid() bool {
	return t < endTypes
}

// Column is the normalized descriptor of a single table column.
type Column struct {
	// Name is the column name as stored in the database.
	Name string
	// Native is the engine's declared type (e.g. "tinyint(1)", "jsonb").
	Native string
	// Type is the normalized type the Native type maps to.
	Type Type
	// Nullable reports whether the column accepts NULL.
	Nullable bool
	// HasDefault reports whether the column carries a default expression.
	HasDefault bool
}

// Table is an introspected table with its columns in ordinal position
// order. Column order is preserved all the way into the generated output.
type Table struct {
	Name    string
	Columns []*Column
}

// Column returns the column with the given name, if it exists.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Schema is a point-in-time snapshot of the introspected tables, in
// introspection order. It holds no connection state; it is built fresh on
// every Inspect call and discarded after rendering.
type Schema struct {
	Tables []*Table
}

// Table returns the table with the given name, if it exists.
func (s *Schema) Table(name string) (*Table, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
