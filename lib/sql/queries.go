package sql

import (
	"fmt"
	"strings"
)

func QuoteIdentifiers(identifiers []string, dialect Dialect) []string {
	result := make([]string, len(identifiers))
	for i, identifier := range identifiers {
		result[i] = dialect.QuoteIdentifier(identifier)
	}
	return result
}

// Placeholders returns [n] bind parameters starting at the zero-based argument [offset].
func Placeholders(dialect Dialect, offset, n int) []string {
	result := make([]string, n)
	for i := range result {
		result[i] = dialect.Placeholder(offset + i)
	}
	return result
}

func BuildSelectIDsQuery(dialect Dialect, tableID TableIdentifier, primaryKey string) string {
	pk := dialect.QuoteIdentifier(primaryKey)
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", pk, tableID.FullyQualifiedName(), pk)
}

// BuildSelectRowsQuery selects the rows whose primary key is one of [numIDs] bind parameters.
// If [cols] is empty every column is selected.
func BuildSelectRowsQuery(dialect Dialect, tableID TableIdentifier, primaryKey string, cols []string, numIDs int) string {
	selectList := "*"
	if len(cols) > 0 {
		selectList = strings.Join(QuoteIdentifiers(cols, dialect), ", ")
	}

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s IN (%s)",
		selectList,
		tableID.FullyQualifiedName(),
		dialect.QuoteIdentifier(primaryKey),
		strings.Join(Placeholders(dialect, 0, numIDs), ", "),
	)
}

func BuildDeleteQuery(tableID TableIdentifier) string {
	return fmt.Sprintf("DELETE FROM %s", tableID.FullyQualifiedName())
}

// BuildInsertQuery returns a single row INSERT with one bind parameter per column.
func BuildInsertQuery(dialect Dialect, tableID TableIdentifier, cols []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableID.FullyQualifiedName(),
		strings.Join(QuoteIdentifiers(cols, dialect), ", "),
		strings.Join(Placeholders(dialect, 0, len(cols)), ", "),
	)
}
