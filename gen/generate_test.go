package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/schemagen"
	"github.com/syssam/schemagen/dialect"
	"github.com/syssam/schemagen/dialect/sql"
	"github.com/syssam/schemagen/dialect/sql/schema"
)

// openTestDB creates a SQLite database with the foo_bar fixture table and
// one row seeded through the adapter's boolean encoding.
func openTestDB(t *testing.T) *sql.Driver {
	t.Helper()
	drv, err := sql.Open(dialect.SQLite, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { drv.Close() })

	ctx := context.Background()
	err = drv.Exec(ctx, `CREATE TABLE foo_bar (
		id INTEGER PRIMARY KEY,
		true_val BOOLEAN NOT NULL,
		false_val BOOLEAN NOT NULL
	)`, []any{}, nil)
	require.NoError(t, err)

	adapter, err := schema.NewAdapter(dialect.SQLite)
	require.NoError(t, err)
	err = drv.Exec(ctx, `INSERT INTO foo_bar (true_val, false_val) VALUES (?, ?)`,
		[]any{adapter.EncodeBool(true), adapter.EncodeBool(false)}, nil)
	require.NoError(t, err)
	return drv
}

func TestGenerateSource(t *testing.T) {
	drv := openTestDB(t)
	res, err := Generate(context.Background(), drv, WithCamelCase())
	require.NoError(t, err)
	assert.Empty(t, res.Path)

	out := string(res.Source)
	assert.Contains(t, out, "type FooBar struct")
	assert.Regexp(t, `TrueVal\s+bool`, out)
	assert.Regexp(t, `FalseVal\s+bool`, out)
	assert.Contains(t, out, "`db:\"true_val\"`")
	assert.Contains(t, out, "`db:\"false_val\"`")
	assert.Contains(t, out, `"foo_bar": FooBar{}`)
}

func TestGenerateDeterminism(t *testing.T) {
	drv := openTestDB(t)
	a, err := Generate(context.Background(), drv, WithCamelCase())
	require.NoError(t, err)
	b, err := Generate(context.Background(), drv, WithCamelCase())
	require.NoError(t, err)
	assert.Equal(t, a.Source, b.Source, "unchanged schema must generate byte-identical output")
}

func TestStoredBooleansRoundTrip(t *testing.T) {
	drv := openTestDB(t)
	adapter, err := schema.NewAdapter(dialect.SQLite)
	require.NoError(t, err)

	rows := &sql.Rows{}
	require.NoError(t, drv.Query(context.Background(),
		"SELECT true_val, false_val FROM foo_bar", []any{}, rows))
	require.True(t, rows.Next())
	var tv, fv any
	require.NoError(t, rows.Scan(&tv, &fv))
	require.NoError(t, rows.Close())

	got, err := adapter.DecodeBool(tv)
	require.NoError(t, err)
	assert.True(t, got)
	got, err = adapter.DecodeBool(fv)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestGenerateWriteAndVerify(t *testing.T) {
	drv := openTestDB(t)
	ctx := context.Background()
	target := filepath.Join(t.TempDir(), "out", "schema.go")

	// Write, then an immediate verify against the same schema passes.
	res, err := Generate(ctx, drv, WithCamelCase(), WithTarget(target))
	require.NoError(t, err)
	assert.Equal(t, target, res.Path)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, res.Source, written)

	_, err = Generate(ctx, drv, WithCamelCase(), WithTarget(target), WithVerify())
	require.NoError(t, err, "verify right after write must pass")

	// Schema drift: add a column and verify again.
	require.NoError(t, drv.Exec(ctx, "ALTER TABLE foo_bar ADD COLUMN note TEXT", []any{}, nil))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err = Generate(ctx, drv, WithCamelCase(), WithTarget(target), WithVerify(), WithLogger(logger))
	require.Error(t, err)
	assert.ErrorIs(t, err, schemagen.ErrDrift)
	assert.Equal(t, schemagen.DriftNotice, err.Error(), "drift message must be the fixed notice")

	var de *schemagen.DriftError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, target, de.Path)
	assert.Contains(t, de.Diff, "+")
	assert.Contains(t, de.Diff, "Note")
	assert.Contains(t, buf.String(), "drift", "diff is surfaced on the debug logger")

	// Verify never mutates the target.
	after, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, written, after)
}

func TestVerifyMissingBaseline(t *testing.T) {
	drv := openTestDB(t)
	target := filepath.Join(t.TempDir(), "never-written.go")
	_, err := Generate(context.Background(), drv, WithTarget(target), WithVerify())
	require.Error(t, err)
	assert.ErrorIs(t, err, schemagen.ErrNoBaseline)
	assert.NotErrorIs(t, err, schemagen.ErrDrift)
	assert.Contains(t, err.Error(), target)
}

func TestVerifyWithoutTarget(t *testing.T) {
	drv := openTestDB(t)
	_, err := Generate(context.Background(), drv, WithVerify())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verify requires a target")
}

func TestAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first, second := openTestDB(t), openTestDB(t)
	err := All(ctx, 2,
		Request{Driver: first, Options: []Option{WithCamelCase(), WithTarget(filepath.Join(dir, "a.go"))}},
		Request{Driver: second, Options: []Option{WithCamelCase(), WithTarget(filepath.Join(dir, "b.go"))}},
	)
	require.NoError(t, err)
	for _, name := range []string{"a.go", "b.go"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}

	// A failing request surfaces its error.
	err = All(ctx, 0, Request{
		Driver:  openTestDB(t),
		Options: []Option{WithTarget(filepath.Join(dir, "missing.go")), WithVerify()},
	})
	assert.ErrorIs(t, err, schemagen.ErrNoBaseline)
}

func TestUnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	drv := sql.OpenDB("oracle", db)
	defer drv.Close()
	_, err = Generate(context.Background(), drv)
	assert.ErrorIs(t, err, schemagen.ErrUnsupportedDialect)
}
