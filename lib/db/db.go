package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/artie-labs/tablesync/lib/retry"
)

const (
	jitterBaseMs = 500
	jitterMaxMs  = 5000
)

type Store interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Conn(ctx context.Context) (*sql.Conn, error)
	Close() error
}

type storeWrapper struct {
	*sql.DB
}

func (s *storeWrapper) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := s.DB.ExecContext(ctx, query, args...)
	return result, Classify(query, err)
}

func (s *storeWrapper) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	return rows, Classify(query, err)
}

func (s *storeWrapper) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	tx, err := s.DB.BeginTx(ctx, opts)
	return tx, Classify("BEGIN", err)
}

func (s *storeWrapper) Conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := s.DB.Conn(ctx)
	return conn, Classify("", err)
}

// NewStore wraps an already opened [sql.DB]. Only one connection is ever open, so no two statements are in flight at once.
func NewStore(db *sql.DB) Store {
	db.SetMaxOpenConns(1)
	return &storeWrapper{DB: db}
}

// Open opens a [Store] and validates the connection. Pinging is retried up to [attempts] times on connectivity errors.
func Open(ctx context.Context, driverName, dsn string, attempts int) (Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to start a SQL client for driver %q: %w", driverName, err)
	}

	retryCfg := retry.NewRetryConfig(retry.NewRetryConfigArgs{
		JitterBaseMs:   jitterBaseMs,
		JitterMaxMs:    jitterMaxMs,
		MaxAttempts:    attempts,
		IsRetryableErr: IsConnectivityError,
	})

	err = retryCfg.WithRetries(ctx, func(_ int, _ error) error {
		return Classify("", db.PingContext(ctx))
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("Failed to close the SQL client", slog.String("driverName", driverName), slog.Any("err", closeErr))
		}

		// A failed ping that isn't clearly a network error still means the database could not be reached.
		if !IsConnectivityError(err) {
			err = NewConnectivityError(err)
		}

		return nil, fmt.Errorf("failed to validate the DB connection for driver %q: %w", driverName, err)
	}

	return NewStore(db), nil
}
