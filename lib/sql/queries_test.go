package sql

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDialect struct {
	defaultSchema string
}

func (testDialect) QuoteIdentifier(identifier string) string {
	return fmt.Sprintf(`"%s"`, identifier)
}

func (testDialect) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}

func (t testDialect) DefaultSchema() string {
	return t.defaultSchema
}

func TestTableIdentifier(t *testing.T) {
	{
		// Default schema
		tableID := NewTableIdentifier(testDialect{defaultSchema: "public"}, "", "Trades")
		assert.Equal(t, "public", tableID.Schema())
		assert.Equal(t, "Trades", tableID.Table())
		assert.Equal(t, `"Trades"`, tableID.EscapedTable())
		assert.Equal(t, `"public"."Trades"`, tableID.FullyQualifiedName())
	}
	{
		// Explicit schema
		tableID := NewTableIdentifier(testDialect{defaultSchema: "public"}, "trading", "Trades")
		assert.Equal(t, `"trading"."Trades"`, tableID.FullyQualifiedName())
	}
	{
		// No schema at all
		tableID := NewTableIdentifier(testDialect{}, "", "Trades")
		assert.Equal(t, `"Trades"`, tableID.FullyQualifiedName())
	}
}

func TestPlaceholders(t *testing.T) {
	assert.Empty(t, Placeholders(testDialect{}, 0, 0))
	assert.Equal(t, []string{"$1", "$2", "$3"}, Placeholders(testDialect{}, 0, 3))
	assert.Equal(t, []string{"$3", "$4"}, Placeholders(testDialect{}, 2, 2))
}

func TestBuildQueries(t *testing.T) {
	dialect := testDialect{}
	tableID := NewTableIdentifier(dialect, "", "Trades")

	assert.Equal(t, `SELECT "Id" FROM "Trades" ORDER BY "Id"`, BuildSelectIDsQuery(dialect, tableID, "Id"))
	assert.Equal(t, `SELECT * FROM "Trades" WHERE "Id" IN ($1, $2, $3)`, BuildSelectRowsQuery(dialect, tableID, "Id", nil, 3))
	assert.Equal(t, `SELECT "Id", "Asset" FROM "Trades" WHERE "Id" IN ($1)`, BuildSelectRowsQuery(dialect, tableID, "Id", []string{"Id", "Asset"}, 1))
	assert.Equal(t, `DELETE FROM "Trades"`, BuildDeleteQuery(tableID))
	assert.Equal(t, `INSERT INTO "Trades" ("Id", "Asset", "Price") VALUES ($1, $2, $3)`, BuildInsertQuery(dialect, tableID, []string{"Id", "Asset", "Price"}))
}
