package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// typeName returns the Go type identifier for a table name.
func typeName(table string, camel bool) string {
	return ident(table, camel)
}

// fieldName returns the Go struct field identifier for a column name.
func fieldName(column string, camel bool) string {
	return ident(column, camel)
}

// ident converts a database identifier to an exported Go identifier.
// With camel enabled, snake_case segments are joined CamelCase style;
// otherwise the name is kept as-is apart from the export capitalization.
func ident(name string, camel bool) string {
	s := sanitize(name)
	if camel {
		return inflect.Camelize(s)
	}
	return export(s)
}

// sanitize replaces characters that cannot appear in a Go identifier.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || unicode.IsDigit(rune(out[0])) {
		out = "X" + out
	}
	return out
}

// export upper-cases the first rune of the identifier.
func export(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
