package db

import (
	"database/sql"
	"log/slog"
)

// CommitOrRollback runs [fn] inside [tx], committing if it succeeds and rolling back otherwise.
func CommitOrRollback(tx *sql.Tx, fn func(tx *sql.Tx) error) error {
	var committed bool
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				slog.Warn("Unable to rollback", slog.Any("err", rollbackErr))
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return Classify("COMMIT", err)
	}

	committed = true
	return nil
}
