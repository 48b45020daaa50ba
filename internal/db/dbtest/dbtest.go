// Package dbtest opens throwaway SQLite stores for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/marksportal/internal/app/migrations"
	"github.com/yigit/marksportal/internal/config"
	"github.com/yigit/marksportal/internal/db"
)

// Config returns a configuration pointing at a fresh SQLite file under t.TempDir()
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.PublicDir = t.TempDir()
	cfg.Server.CORSOrigins = "*"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "marksportal_test.db")
	cfg.Database.ConnMaxLifetime = "1h"
	return cfg
}

// Open opens a fresh SQLite store with the schema in place and closes it when the test ends
func Open(t *testing.T) *db.DB {
	t.Helper()
	return OpenWithConfig(t, Config(t))
}

// OpenWithConfig is Open for a caller-supplied configuration
func OpenWithConfig(t *testing.T, cfg *config.Config) *db.DB {
	t.Helper()

	database, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	err = migrations.NewMigrator(database, zerolog.Nop()).EnsureSchema(context.Background())
	require.NoError(t, err)
	return database
}
