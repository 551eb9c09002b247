package shared

import (
	"context"

	"github.com/artie-labs/tablesync/lib/db"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
	"github.com/artie-labs/tablesync/models"
)

// Store implements [destination.Source] and [destination.Destination] on top of [db.Store] for any [sql.Dialect].
type Store struct {
	db.Store
	dialect sql.Dialect
}

func NewStore(store db.Store, dialect sql.Dialect) Store {
	return Store{Store: store, dialect: dialect}
}

func (s Store) IdentifierFor(schema, table string) sql.TableIdentifier {
	return sql.NewTableIdentifier(s.dialect, schema, table)
}

func (s Store) ListIDs(ctx context.Context, tableID sql.TableIdentifier, primaryKey string) ([]int64, error) {
	return ListIDs(ctx, s, s.dialect, tableID, primaryKey)
}

func (s Store) FetchRows(ctx context.Context, tableID sql.TableIdentifier, primaryKey string, schema models.Schema, ids []int64) (*optimization.TableData, error) {
	return FetchRows(ctx, s, s.dialect, tableID, primaryKey, schema, ids)
}

func (s Store) ClearTable(ctx context.Context, tableID sql.TableIdentifier) (int64, error) {
	return ClearTable(ctx, s, tableID)
}

func (s Store) InsertRows(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error) {
	return InsertRows(ctx, s, s.dialect, tableID, tableData)
}
