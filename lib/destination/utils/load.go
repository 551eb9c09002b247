package utils

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/artie-labs/tablesync/clients/mssql"
	"github.com/artie-labs/tablesync/clients/mysql"
	"github.com/artie-labs/tablesync/clients/postgres"
	"github.com/artie-labs/tablesync/clients/sqlite"
	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/config/constants"
	"github.com/artie-labs/tablesync/lib/destination"
)

type store interface {
	destination.Source
	destination.Destination
}

func load(ctx context.Context, cfg config.Database, attempts int) (store, error) {
	switch cfg.Kind {
	case constants.MSSQL:
		return mssql.LoadStore(ctx, cfg, attempts)
	case constants.Postgres:
		return postgres.LoadStore(ctx, cfg, attempts)
	case constants.MySQL:
		return mysql.LoadStore(ctx, cfg, attempts)
	case constants.SQLite:
		return sqlite.LoadStore(ctx, cfg, attempts)
	}

	return nil, fmt.Errorf("invalid database kind: %q", cfg.Kind)
}

// LoadSource returns a [destination.Source] for any supported database.
func LoadSource(ctx context.Context, cfg config.Config) (destination.Source, error) {
	source, err := load(ctx, cfg.Source, cfg.ConnectAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to load source: %w", err)
	}

	return source, nil
}

// LoadDestination returns a [destination.Destination] for any supported database.
// MS SQL and Postgres destinations also implement [destination.BulkLoader].
func LoadDestination(ctx context.Context, cfg config.Config) (destination.Destination, error) {
	dest, err := load(ctx, cfg.Destination, cfg.ConnectAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination: %w", err)
	}

	return dest, nil
}

// LoadStores opens the source and the destination at the same time, each one may spend a while retrying its ping.
// If either fails, the other one is closed.
func LoadStores(ctx context.Context, cfg config.Config) (destination.Source, destination.Destination, error) {
	var source destination.Source
	var dest destination.Destination

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		source, err = LoadSource(groupCtx, cfg)
		return err
	})
	group.Go(func() error {
		var err error
		dest, err = LoadDestination(groupCtx, cfg)
		return err
	})

	if err := group.Wait(); err != nil {
		if source != nil {
			closeStore("source", source.Close)
		}
		if dest != nil {
			closeStore("destination", dest.Close)
		}
		return nil, nil, err
	}

	return source, dest, nil
}

func closeStore(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		slog.Warn("Failed to close store", slog.String("store", name), slog.Any("err", err))
	}
}
