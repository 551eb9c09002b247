package sql

import "fmt"

type TableIdentifier struct {
	dialect Dialect
	schema  string
	table   string
}

func NewTableIdentifier(dialect Dialect, schema, table string) TableIdentifier {
	if schema == "" {
		schema = dialect.DefaultSchema()
	}

	return TableIdentifier{dialect: dialect, schema: schema, table: table}
}

func (ti TableIdentifier) Schema() string {
	return ti.schema
}

func (ti TableIdentifier) Table() string {
	return ti.table
}

func (ti TableIdentifier) EscapedTable() string {
	return ti.dialect.QuoteIdentifier(ti.table)
}

func (ti TableIdentifier) FullyQualifiedName() string {
	if ti.schema == "" {
		return ti.EscapedTable()
	}

	return fmt.Sprintf("%s.%s", ti.dialect.QuoteIdentifier(ti.schema), ti.EscapedTable())
}
