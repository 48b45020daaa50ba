package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/marksportal/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "tx.db")
	cfg.Database.ConnMaxLifetime = "1h"

	database, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return database
}

func countItems(t *testing.T, database *DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	database := openTestDB(t)

	err := database.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a'), ('b')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countItems(t, database))
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	database := openTestDB(t)
	failure := errors.New("second insert failed")

	err := database.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.Zero(t, countItems(t, database))
}

func TestWithTransaction_RollbackFailureKeepsCause(t *testing.T) {
	database := openTestDB(t)
	failure := errors.New("upsert failed")

	err := database.WithTransaction(context.Background(), func(_ context.Context, tx *sql.Tx) error {
		// Ending the transaction here makes the deferred rollback fail
		require.NoError(t, tx.Rollback())
		return failure
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure))
	assert.True(t, errors.Is(err, sql.ErrTxDone))
}
