package dialect

import (
	"fmt"
	"strings"
)

type MSSQLDialect struct{}

func (MSSQLDialect) QuoteIdentifier(identifier string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(identifier, `"`, `""`))
}

func (MSSQLDialect) Placeholder(i int) string {
	return fmt.Sprintf("@p%d", i+1)
}

func (MSSQLDialect) DefaultSchema() string {
	return "dbo"
}

// NormalizeSchema maps `public` to `dbo`, MSSQL's default schema. `public` is a reserved keyword.
func NormalizeSchema(schema string) string {
	if strings.ToLower(schema) == "public" {
		return "dbo"
	}

	return schema
}
