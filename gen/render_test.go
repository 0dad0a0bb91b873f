package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/schemagen/dialect/sql/schema"
)

func testModel() *schema.Schema {
	return &schema.Schema{
		Tables: []*schema.Table{
			{
				Name: "zeta_items",
				Columns: []*schema.Column{
					{Name: "id", Type: schema.TypeInt},
					{Name: "is_active", Type: schema.TypeBool},
					{Name: "nickname", Type: schema.TypeString, Nullable: true},
					{Name: "payload", Type: schema.TypeJSON},
					{Name: "created_at", Type: schema.TypeTime},
					{Name: "mystery", Type: schema.TypeUnknown},
				},
			},
			{
				Name: "alpha_users",
				Columns: []*schema.Column{
					{Name: "id", Type: schema.TypeInt},
					{Name: "score", Type: schema.TypeFloat, Nullable: true},
					{Name: "avatar", Type: schema.TypeBytes},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	src, err := render(testModel(), newConfig(WithCamelCase()))
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by schemagen. DO NOT EDIT.")
	assert.Contains(t, out, "type ZetaItems struct")
	assert.Contains(t, out, "type AlphaUsers struct")

	// Case conversion applies to identifiers only; tags keep the stored
	// column names.
	assert.Regexp(t, `IsActive\s+bool`, out)
	assert.Contains(t, out, "`db:\"is_active\"`")
	assert.NotContains(t, out, "`db:\"isActive\"`")

	// Nullable columns use the database/sql wrappers.
	assert.Regexp(t, `Nickname\s+sql\.NullString`, out)
	assert.Regexp(t, `Score\s+sql\.NullFloat64`, out)
	assert.Regexp(t, `Payload\s+json\.RawMessage`, out)
	assert.Regexp(t, `CreatedAt\s+time\.Time`, out)
	assert.Regexp(t, `Avatar\s+\[\]byte`, out)

	// Unmappable types fall back to any.
	assert.Regexp(t, `Mystery\s+any`, out)

	// The aggregate mapping lists every table.
	assert.Contains(t, out, `"zeta_items": ZetaItems{}`)
	assert.Contains(t, out, `"alpha_users": AlphaUsers{}`)
}

func TestRenderPreservesOrder(t *testing.T) {
	src, err := render(testModel(), newConfig(WithCamelCase()))
	require.NoError(t, err)
	out := string(src)

	// Table order follows model (introspection) order, not name order.
	zeta := indexOf(t, out, "type ZetaItems struct")
	alpha := indexOf(t, out, "type AlphaUsers struct")
	assert.Less(t, zeta, alpha)

	// Column order follows ordinal position.
	id := indexOf(t, out, "Id ")
	active := indexOf(t, out, "IsActive")
	nick := indexOf(t, out, "Nickname")
	assert.Less(t, id, active)
	assert.Less(t, active, nick)
}

func TestRenderDeterminism(t *testing.T) {
	a, err := render(testModel(), newConfig(WithCamelCase()))
	require.NoError(t, err)
	b, err := render(testModel(), newConfig(WithCamelCase()))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same model and config must render byte-identical output")
}

func TestRenderPreserveNaming(t *testing.T) {
	src, err := render(testModel(), newConfig())
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "type Zeta_items struct")
	assert.Regexp(t, `Is_active\s+bool`, out)
	assert.Contains(t, out, "`db:\"is_active\"`")
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	if i < 0 {
		t.Fatalf("%q not found in rendered output", sub)
	}
	return i
}
