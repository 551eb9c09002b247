package shared

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artie-labs/tablesync/lib/db"
	"github.com/artie-labs/tablesync/lib/sql"
)

func ListIDs(ctx context.Context, store db.Store, dialect sql.Dialect, tableID sql.TableIdentifier, primaryKey string) ([]int64, error) {
	query := sql.BuildSelectIDsQuery(dialect, tableID, primaryKey)
	slog.Debug("Listing ids...", slog.String("query", query))

	rows, err := store.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ids: %w", err)
	}

	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", db.Classify(query, err))
		}

		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over ids: %w", db.Classify(query, err))
	}

	return ids, nil
}

// ClearTable deletes every row in the table, the DELETE is not batched.
func ClearTable(ctx context.Context, store db.Store, tableID sql.TableIdentifier) (int64, error) {
	query := sql.BuildDeleteQuery(tableID)
	slog.Debug("Clearing table...", slog.String("query", query))

	result, err := store.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to clear table %q: %w", tableID.FullyQualifiedName(), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
