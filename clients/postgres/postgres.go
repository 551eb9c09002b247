package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/artie-labs/tablesync/clients/postgres/dialect"
	"github.com/artie-labs/tablesync/clients/shared"
	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/db"
	"github.com/artie-labs/tablesync/lib/destination"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
)

// Registered by [stdlib].
const driverName = "pgx"

type Store struct {
	shared.Store
}

func NewStore(store db.Store) Store {
	return Store{Store: shared.NewStore(store, dialect.PostgresDialect{})}
}

// BulkLoad copies the rows with COPY FROM. COPY always checks constraints and fires triggers, so the toggles can only be honored when enabled.
func (s Store) BulkLoad(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData, opts destination.BulkOptions) (int64, error) {
	if tableData.ShouldSkipUpdate() {
		return 0, nil
	}

	if !opts.CheckConstraints || !opts.FireTriggers {
		slog.Warn("Postgres COPY always checks constraints and fires triggers, ignoring the disabled bulk copy options",
			slog.Bool("checkConstraints", opts.CheckConstraints),
			slog.Bool("fireTriggers", opts.FireTriggers),
		)
	}

	conn, err := s.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pgx conn: %w", err)
	}

	defer conn.Close()

	var submitted int64
	err = conn.Raw(func(driverConn any) error {
		stdlibConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return fmt.Errorf("expected a pgx connection, got %T", driverConn)
		}

		submitted, err = copyRows(ctx, stdlibConn.Conn(), tableID, tableData)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to copy from rows: %w", err)
	}

	return submitted, nil
}

// copier is satisfied by [*pgx.Conn].
type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// copyRows streams every row of [tableData] through COPY FROM and returns the number of rows submitted.
// A loaded count that differs from the submitted one is logged, not returned as an error.
func copyRows(ctx context.Context, conn copier, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error) {
	submitted := int64(tableData.NumberOfRows())
	identifier := pgx.Identifier{tableID.Schema(), tableID.Table()}
	copyCount, err := conn.CopyFrom(ctx, identifier, tableData.Columns(), pgx.CopyFromRows(tableData.Rows()))
	if err != nil {
		return 0, db.Classify("COPY", err)
	}

	if copyCount != submitted {
		slog.Warn("COPY loaded a different number of rows than were submitted",
			slog.String("table", tableID.FullyQualifiedName()),
			slog.Int64("submitted", submitted),
			slog.Int64("loaded", copyCount),
		)
	}

	return submitted, nil
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
