package shared

import (
	"context"
	goSql "database/sql"
	"fmt"

	"github.com/artie-labs/tablesync/lib/db"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
)

// InsertRows prepares one INSERT for the table's columns and executes it once per row, all inside one transaction.
func InsertRows(ctx context.Context, store db.Store, dialect sql.Dialect, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error) {
	if tableData.ShouldSkipUpdate() {
		return 0, nil
	}

	query := sql.BuildInsertQuery(dialect, tableID, tableData.Columns())
	tx, err := store.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var rowsLoaded int64
	err = db.CommitOrRollback(tx, func(tx *goSql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare insert statement: %w", db.Classify(query, err))
		}

		defer stmt.Close()

		for _, row := range tableData.Rows() {
			result, err := stmt.ExecContext(ctx, row...)
			if err != nil {
				return fmt.Errorf("failed to insert row: %w", db.Classify(query, err))
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}

			rowsLoaded += affected
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return rowsLoaded, nil
}
