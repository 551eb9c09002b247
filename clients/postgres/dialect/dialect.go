package dialect

import (
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (PostgresDialect) QuoteIdentifier(identifier string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(identifier, `"`, `""`))
}

func (PostgresDialect) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}

func (PostgresDialect) DefaultSchema() string {
	return "public"
}
