package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestConstraintDetection(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
	}{
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "postgres other", err: &pgconn.PgError{Code: "42P01"}},
		{
			name:   "sqlite unique",
			err:    sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			unique: true,
		},
		{
			name:   "sqlite primary key",
			err:    sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			unique: true,
		},
		{
			name:       "sqlite foreign key wrapped",
			err:        fmt.Errorf("insert mark: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}),
			foreignKey: true,
		},
		{name: "plain", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
		})
	}
}
