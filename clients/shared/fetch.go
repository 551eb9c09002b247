package shared

import (
	"context"
	goSql "database/sql"
	"fmt"
	"log/slog"

	"github.com/artie-labs/tablesync/lib/db"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
	"github.com/artie-labs/tablesync/models"
)

// FetchRows selects the rows for [ids] with a single IN query, one bind parameter per id.
func FetchRows(ctx context.Context, store db.Store, dialect sql.Dialect, tableID sql.TableIdentifier, primaryKey string, schema models.Schema, ids []int64) (*optimization.TableData, error) {
	var cols []string
	if schema != nil {
		cols = schema.Columns()
	}

	if len(ids) == 0 {
		return optimization.NewTableData(tableID.Table(), cols), nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := sql.BuildSelectRowsQuery(dialect, tableID, primaryKey, cols, len(ids))
	slog.Debug("Fetching rows...", slog.Int("ids", len(ids)), slog.String("table", tableID.FullyQualifiedName()))

	rows, err := store.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows: %w", err)
	}

	defer rows.Close()

	var tableData *optimization.TableData
	if schema != nil {
		tableData, err = scanRecords(tableID.Table(), schema, rows)
	} else {
		tableData, err = scanDynamic(tableID.Table(), rows)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan rows: %w", db.Classify(query, err))
	}

	return tableData, nil
}

func scanRecords(name string, schema models.Schema, rows *goSql.Rows) (*optimization.TableData, error) {
	tableData := optimization.NewTableData(name, schema.Columns())
	for rows.Next() {
		record := schema.NewRecord()
		if err := rows.Scan(record.ScanTargets()...); err != nil {
			return nil, err
		}

		if err := tableData.InsertRow(record.Values()); err != nil {
			return nil, err
		}
	}

	return tableData, rows.Err()
}

// scanDynamic takes the columns from the result set, which every row shares.
func scanDynamic(name string, rows *goSql.Rows) (*optimization.TableData, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	tableData := optimization.NewTableData(name, columns)
	for rows.Next() {
		row := make([]any, len(columns))
		rowPointers := make([]any, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err = rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		if err = tableData.InsertRow(row); err != nil {
			return nil, err
		}
	}

	return tableData, rows.Err()
}
