package dialect

import (
	"fmt"
	"strings"
)

type MySQLDialect struct{}

func (MySQLDialect) QuoteIdentifier(identifier string) string {
	return fmt.Sprintf("`%s`", strings.ReplaceAll(identifier, "`", "``"))
}

func (MySQLDialect) Placeholder(_ int) string {
	return "?"
}

// DefaultSchema is empty, tables resolve against the connection's database.
func (MySQLDialect) DefaultSchema() string {
	return ""
}
