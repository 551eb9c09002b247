package optimization

import (
	"fmt"
	"slices"
)

// TableData is an in-memory buffer of rows for a single table.
// Every row holds one value per column, in column order. NULLs are kept as nil.
type TableData struct {
	name    string
	columns []string
	rows    [][]any
}

func NewTableData(name string, columns []string) *TableData {
	return &TableData{
		name:    name,
		columns: slices.Clone(columns),
	}
}

func (t *TableData) Name() string {
	return t.name
}

func (t *TableData) Columns() []string {
	return t.columns
}

func (t *TableData) Rows() [][]any {
	return t.rows
}

func (t *TableData) NumberOfRows() int {
	return len(t.rows)
}

// ShouldSkipUpdate will check if there are any rows or any columns
func (t *TableData) ShouldSkipUpdate() bool {
	return t.NumberOfRows() == 0 || len(t.columns) == 0
}

// InsertRow appends a row of values that are already in column order.
func (t *TableData) InsertRow(values []any) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("expected %d values, got %d", len(t.columns), len(values))
	}

	t.rows = append(t.rows, values)
	return nil
}
