package destination

import (
	"context"

	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
	"github.com/artie-labs/tablesync/models"
)

// Source is the read side of a sync.
type Source interface {
	IdentifierFor(schema, table string) sql.TableIdentifier
	// ListIDs returns every primary key of the table in ascending order.
	ListIDs(ctx context.Context, tableID sql.TableIdentifier, primaryKey string) ([]int64, error)
	// FetchRows returns the rows whose primary key is in [ids]. If [schema] is nil the columns are taken from the result set.
	FetchRows(ctx context.Context, tableID sql.TableIdentifier, primaryKey string, schema models.Schema, ids []int64) (*optimization.TableData, error)
	Close() error
}

// Destination is the write side of a sync.
type Destination interface {
	IdentifierFor(schema, table string) sql.TableIdentifier
	// ClearTable deletes every row of the table and returns how many were removed.
	ClearTable(ctx context.Context, tableID sql.TableIdentifier) (int64, error)
	// InsertRows executes a parameterized INSERT once per row inside a single transaction.
	InsertRows(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error)
	Close() error
}

type BulkOptions struct {
	CheckConstraints bool
	FireTriggers     bool
}

// BulkLoader is implemented by destinations with a native bulk load path.
type BulkLoader interface {
	// BulkLoad streams every row of [tableData] into the table in one call and returns the number of rows submitted.
	BulkLoad(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData, opts BulkOptions) (int64, error)
}
