package schema

import (
	"context"
	"strings"

	"github.com/syssam/schemagen/dialect"
	"github.com/syssam/schemagen/dialect/sql"
)

// SQLite is the dialect adapter for SQLite. Column types are matched by
// the engine's affinity rules, since declared types are free-form.
type SQLite struct{}

// Dialect implements Adapter.
func (SQLite) Dialect() string { return dialect.SQLite }

// TableNames returns the user tables of the database, ordered by name.
// Internal sqlite_* tables are excluded.
func (SQLite) TableNames(ctx context.Context, conn dialect.ExecQuerier) ([]string, error) {
	query := `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`
	rows := &sql.Rows{}
	if err := conn.Query(ctx, query, []any{}, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// TableColumns returns the columns of the table in declaration order,
// using the pragma_table_info table-valued function.
func (SQLite) TableColumns(ctx context.Context, conn dialect.ExecQuerier, table string) ([]*Column, error) {
	query := `SELECT name, type, "notnull", dflt_value
		FROM pragma_table_info(?) ORDER BY cid`
	rows := &sql.Rows{}
	if err := conn.Query(ctx, query, []any{table}, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	var columns []*Column
	for rows.Next() {
		var (
			name, native string
			notNull      int64
			dflt         sql.NullString
		)
		if err := rows.Scan(&name, &native, &notNull, &dflt); err != nil {
			return nil, err
		}
		columns = append(columns, &Column{
			Name:       name,
			Native:     native,
			Nullable:   notNull == 0,
			HasDefault: dflt.Valid,
		})
	}
	return columns, rows.Err()
}

// NormalizeType implements Adapter. Matching follows SQLite's type
// affinity rules: substring checks on the declared type, boolean first so
// that BOOLEAN does not fall through to another bucket.
func (SQLite) NormalizeType(native string) Type {
	t := strings.ToUpper(strings.TrimSpace(native))
	switch {
	case strings.Contains(t, "BOOL"):
		return TypeBool
	case strings.Contains(t, "INT"):
		return TypeInt
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return TypeString
	case strings.Contains(t, "JSON"):
		return TypeJSON
	case strings.Contains(t, "DATE"), strings.Contains(t, "TIME"):
		return TypeTime
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"),
		strings.Contains(t, "DOUB"), strings.Contains(t, "NUMERIC"),
		strings.Contains(t, "DECIMAL"):
		return TypeFloat
	case t == "" || strings.Contains(t, "BLOB"):
		return TypeBytes
	default:
		return TypeUnknown
	}
}

// EncodeBool implements Adapter. SQLite stores booleans as integer 0/1.
func (SQLite) EncodeBool(v bool) any {
	if v {
		return int64(1)
	}
	return int64(0)
}

// DecodeBool implements Adapter.
func (SQLite) DecodeBool(v any) (bool, error) {
	return decodeNumericBool(dialect.SQLite, v)
}
