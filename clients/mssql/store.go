package mssql

import (
	"context"
	goSql "database/sql"
	"fmt"
	"log/slog"

	mssql "github.com/microsoft/go-mssqldb"

	"github.com/artie-labs/tablesync/clients/mssql/dialect"
	"github.com/artie-labs/tablesync/clients/shared"
	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/db"
	"github.com/artie-labs/tablesync/lib/destination"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
)

const driverName = "sqlserver"

type Store struct {
	shared.Store
}

func NewStore(store db.Store) Store {
	return Store{Store: shared.NewStore(store, dialect.MSSQLDialect{})}
}

func (s Store) IdentifierFor(schema, table string) sql.TableIdentifier {
	return s.Store.IdentifierFor(dialect.NormalizeSchema(schema), table)
}

// BulkLoad streams the rows through a TDS bulk copy inside one transaction.
func (s Store) BulkLoad(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData, opts destination.BulkOptions) (int64, error) {
	if tableData.ShouldSkipUpdate() {
		return 0, nil
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	submitted := int64(tableData.NumberOfRows())
	err = db.CommitOrRollback(tx, func(tx *goSql.Tx) error {
		query := mssql.CopyIn(tableID.FullyQualifiedName(), BulkOptions(opts), tableData.Columns()...)
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare bulk insert: %w", db.Classify(query, err))
		}

		defer stmt.Close()

		for _, row := range tableData.Rows() {
			if _, err = stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("failed to copy row: %w", db.Classify(query, err))
			}
		}

		results, err := stmt.ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to finalize bulk insert: %w", db.Classify(query, err))
		}

		rowsLoaded, err := results.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsLoaded != submitted {
			slog.Warn("Bulk copy loaded a different number of rows than were submitted",
				slog.String("table", tableID.FullyQualifiedName()),
				slog.Int64("submitted", submitted),
				slog.Int64("loaded", rowsLoaded),
			)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return submitted, nil
}

// BulkOptions maps each toggle to its own bulk copy option.
func BulkOptions(opts destination.BulkOptions) mssql.BulkOptions {
	return mssql.BulkOptions{
		CheckConstraints: opts.CheckConstraints,
		FireTriggers:     opts.FireTriggers,
	}
}

func LoadStore(ctx context.Context, cfg config.Database, attempts int) (Store, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return Store{}, err
	}

	store, err := db.Open(ctx, driverName, dsn, attempts)
	if err != nil {
		return Store{}, err
	}

	return NewStore(store), nil
}
