package sqlite

import (
	"context"

	_ "modernc.org/sqlite"

	"github.com/artie-labs/tablesync/clients/shared"
	"github.com/artie-labs/tablesync/clients/sqlite/dialect"
	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/db"
)

const driverName = "sqlite"

type Store struct {
	shared.Store
}

func NewStore(store db.Store) Store {
	return Store{Store: shared.NewStore(store, dialect.SQLiteDialect{})}
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
