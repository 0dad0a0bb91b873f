package schema

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/schemagen/dialect"
	"github.com/syssam/schemagen/dialect/sql"
)

// MySQL is the dialect adapter for MySQL and MariaDB.
type MySQL struct{}

// Dialect implements Adapter.
func (MySQL) Dialect() string { return dialect.MySQL }

// TableNames returns the base tables of the current database, ordered by
// name so repeated introspections stay byte-identical.
func (MySQL) TableNames(ctx context.Context, conn dialect.ExecQuerier) ([]string, error) {
	query := `SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`
	rows := &sql.Rows{}
	if err := conn.Query(ctx, query, []any{}, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNames(rows)
}

// TableColumns returns the columns of the table in ordinal position order.
// It selects column_type rather than data_type so that the tinyint(1)
// boolean convention survives normalization.
func (MySQL) TableColumns(ctx context.Context, conn dialect.ExecQuerier, table string) ([]*Column, error) {
	query := `SELECT column_name, column_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
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
func (MySQL) NormalizeType(native string) Type {
	t := strings.ToLower(strings.TrimSpace(native))
	// tinyint(1) is the MySQL spelling of a boolean column.
	if t == "tinyint(1)" || t == "tinyint(1) unsigned" || t == "bool" || t == "boolean" {
		return TypeBool
	}
	// Strip display width and the unsigned/zerofill attributes.
	if i := strings.IndexByte(t, '('); i != -1 {
		if j := strings.IndexByte(t, ')'); j > i {
			t = t[:i] + t[j+1:]
		}
	}
	t = strings.TrimSpace(strings.NewReplacer(" unsigned", "", " zerofill", "").Replace(t))
	switch t {
	case "tinyint", "smallint", "mediumint", "int", "integer", "bigint", "year":
		return TypeInt
	case "decimal", "numeric", "float", "double", "real":
		return TypeFloat
	case "char", "varchar", "tinytext", "text", "mediumtext", "longtext", "enum", "set":
		return TypeString
	case "date", "datetime", "timestamp", "time":
		return TypeTime
	case "json":
		return TypeJSON
	case "binary", "varbinary", "tinyblob", "blob", "mediumblob", "longblob", "bit":
		return TypeBytes
	default:
		return TypeUnknown
	}
}

// EncodeBool implements Adapter. MySQL stores booleans as tinyint 0/1.
func (MySQL) EncodeBool(v bool) any {
	if v {
		return int64(1)
	}
	return int64(0)
}

// DecodeBool implements Adapter.
func (MySQL) DecodeBool(v any) (bool, error) {
	return decodeNumericBool(dialect.MySQL, v)
}

// decodeNumericBool decodes the 0/1 encoding shared by the engines
// without a native boolean column type.
func decodeNumericBool(dialect string, v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		return strconv.ParseBool(string(v))
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("schema: %s: cannot decode %T as bool", dialect, v)
	}
}

// scanNames collects a single-column string result set.
func scanNames(rows *sql.Rows) ([]string, error) {
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
