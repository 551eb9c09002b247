package dialect

import (
	"fmt"
	"strings"
)

type SQLiteDialect struct{}

func (SQLiteDialect) QuoteIdentifier(identifier string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(identifier, `"`, `""`))
}

func (SQLiteDialect) Placeholder(_ int) string {
	return "?"
}

func (SQLiteDialect) DefaultSchema() string {
	return ""
}
