package schema

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/schemagen/dialect"
	"github.com/syssam/schemagen/dialect/sql"
)

// Postgres is the dialect adapter for PostgreSQL. Unlike the other
// supported engines it has a native boolean column type.
type Postgres struct{}

// Dialect implements Adapter.
func (Postgres) Dialect() string { return dialect.Postgres }

// TableNames returns the base tables of the current schema search path,
// ordered by name.
func (Postgres) TableNames(ctx context.Context, conn dialect.ExecQuerier) ([]string, error) {
	query := `SELECT table_name FROM information_schema.tables
		WHERE table_schema = CURRENT_SCHEMA() AND table_type = 'BASE TABLE'
		ORDER BY table_name`
	rows := &sql.Rows{}
	if err := conn.Query(ctx, query, []any{}, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// TableColumns returns the columns of the table in ordinal position order.
func (Postgres) TableColumns(ctx context.Context, conn dialect.ExecQuerier, table string) ([]*Column, error) {
	query := `SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = CURRENT_SCHEMA() AND table_name = $1
		ORDER BY ordinal_position`
	rows := &sql.Rows{}
	if err := conn.Query(ctx, query, []any{table}, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	var columns []*Column
	for rows.Next() {
		var (
			name, native, nullable string
			dflt                   sql.NullString
		)
		if err := rows.Scan(&name, &native, &nullable, &dflt); err != nil {
			return nil, err
		}
		columns = append(columns, &Column{
			Name:       name,
			Native:     native,
			Nullable:   nullable == "YES",
			HasDefault: dflt.Valid,
		})
	}
	return columns, rows.Err()
}

// NormalizeType implements Adapter.
func (Postgres) NormalizeType(native string) Type {
	t := strings.ToLower(strings.TrimSpace(native))
	switch t {
	case "bool", "boolean":
		return TypeBool
	case "smallint", "integer", "bigint", "int2", "int4", "int8",
		"smallserial", "serial", "bigserial":
		return TypeInt
	case "real", "double precision", "numeric", "decimal", "float4", "float8", "money":
		return TypeFloat
	case "text", "character varying", "varchar", "character", "char",
		"uuid", "name", "citext":
		return TypeString
	case "json", "jsonb":
		return TypeJSON
	case "bytea":
		return TypeBytes
	}
	switch {
	case t == "date", strings.HasPrefix(t, "time"), strings.HasPrefix(t, "timestamp"):
		return TypeTime
	default:
		return TypeUnknown
	}
}

// EncodeBool implements Adapter. Postgres booleans travel as bool.
func (Postgres) EncodeBool(v bool) any {
	return v
}

// DecodeBool implements Adapter. The wire value is a bool, but drivers in
// simple-protocol mode may hand back the textual t/f form.
func (Postgres) DecodeBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		return parsePostgresBool(v)
	case []byte:
		return parsePostgresBool(string(v))
	default:
		return false, fmt.Errorf("schema: postgres: cannot decode %T as bool", v)
	}
}

func parsePostgresBool(s string) (bool, error) {
	switch s {
	case "t":
		return true, nil
	case "f":
		return false, nil
	}
	return strconv.ParseBool(s)
}
