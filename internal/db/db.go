package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "github.com/mattn/go-sqlite3"    // registers the "sqlite3" database/sql driver

	"github.com/yigit/marksportal/internal/config"
	"github.com/yigit/marksportal/internal/pkg/helpers"
	"github.com/yigit/marksportal/internal/pkg/logger"
)

// Dialect identifies the SQL flavour spoken by the open store
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Placeholder returns the bind parameter format for the dialect
func (d Dialect) Placeholder() squirrel.PlaceholderFormat {
	if d == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// Querier is satisfied by both *sql.DB and *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is the shared store handle
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Builder returns a squirrel statement builder for the store's dialect
func (db *DB) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.Dialect.Placeholder())
}

// Open opens the store selected by the configuration and verifies it answers
func Open(cfg *config.Config) (*DB, error) {
	var (
		driverName string
		dsn        string
		dialect    Dialect
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		driverName, dsn, dialect = "pgx", cfg.Database.URL, DialectPostgres
	case config.DriverSQLite:
		driverName, dsn, dialect = "sqlite3", SQLiteDSN(cfg.Database.Path), DialectSQLite
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetConnMaxLifetime(helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour))

	if dialect == DialectSQLite {
		// SQLite allows a single writer; one connection serializes every statement.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &DB{DB: sqlDB, Dialect: dialect}, nil
}

// SQLiteDSN builds a go-sqlite3 DSN for a file path with foreign keys enforced
func SQLiteDSN(path string) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", "5000")
	return "file:" + path + "?" + q.Encode()
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs fn within a transaction, committing only if fn succeeds
func (db *DB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
