package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/marksportal/internal/db"
)

// Migrator creates the schema the application needs if it is missing
type Migrator struct {
	db     *db.DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.DB, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     database,
		logger: lgr,
	}
}

// Statement is one named DDL step
type Statement struct {
	Name string
	SQL  string
}

// columnTypes holds the dialect specific pieces of the table definitions
type columnTypes struct {
	id        string
	timestamp string
}

func typesFor(dialect db.Dialect) columnTypes {
	if dialect == db.DialectPostgres {
		return columnTypes{
			id:        "BIGSERIAL PRIMARY KEY",
			timestamp: "TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP",
		}
	}
	return columnTypes{
		id:        "INTEGER PRIMARY KEY AUTOINCREMENT",
		timestamp: "DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP",
	}
}

// Statements returns the ordered DDL for the dialect
func Statements(dialect db.Dialect) []Statement {
	t := typesFor(dialect)
	return []Statement{
		{Name: "students", SQL: fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS students (
			id %s,
			reg_number TEXT NOT NULL,
			full_name TEXT NOT NULL,
			year TEXT NOT NULL,
			department TEXT NOT NULL,
			section TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at %s,
			CONSTRAINT students_reg_number_key UNIQUE (reg_number)
		)`, t.id, t.timestamp)},
		{Name: "subjects", SQL: fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS subjects (
			id %s,
			year TEXT NOT NULL,
			department TEXT NOT NULL,
			semester TEXT NOT NULL,
			subject_code TEXT NOT NULL,
			subject_name TEXT NOT NULL,
			created_at %s,
			CONSTRAINT subjects_year_department_code_key UNIQUE (year, department, subject_code)
		)`, t.id, t.timestamp)},
		{Name: "marks", SQL: fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS marks (
			id %s,
			student_id BIGINT NOT NULL,
			subject_code TEXT NOT NULL,
			subject_name TEXT NOT NULL,
			assessment_type TEXT NOT NULL,
			marks INTEGER NOT NULL,
			academic_year TEXT NOT NULL,
			created_at %s,
			CONSTRAINT marks_student_id_fkey FOREIGN KEY (student_id) REFERENCES students (id) ON DELETE CASCADE,
			CONSTRAINT marks_student_subject_assessment_year_key UNIQUE (student_id, subject_code, assessment_type, academic_year)
		)`, t.id, t.timestamp)},
		{Name: "idx_students_class", SQL: `CREATE INDEX IF NOT EXISTS idx_students_class ON students (year, department, section)`},
		{Name: "idx_students_created_at", SQL: `CREATE INDEX IF NOT EXISTS idx_students_created_at ON students (created_at DESC)`},
		{Name: "idx_marks_lookup", SQL: `CREATE INDEX IF NOT EXISTS idx_marks_lookup ON marks (subject_code, assessment_type, academic_year)`},
	}
}

// EnsureSchema creates every table and index that does not exist yet. Each
// statement is attempted even when an earlier one fails; failures are logged
// and returned joined so the caller can decide whether to continue.
func (m *Migrator) EnsureSchema(ctx context.Context) error {
	var failed []error
	for _, stmt := range Statements(m.db.Dialect) {
		if _, err := m.db.ExecContext(ctx, stmt.SQL); err != nil {
			m.logger.Error().Err(err).Str("object", stmt.Name).Msg("Failed to create schema object")
			failed = append(failed, fmt.Errorf("%s: %w", stmt.Name, err))
			continue
		}
		m.logger.Debug().Str("object", stmt.Name).Msg("Schema object ensured")
	}

	if len(failed) > 0 {
		return fmt.Errorf("schema initialization incomplete: %w", errors.Join(failed...))
	}
	m.logger.Info().Str("dialect", string(m.db.Dialect)).Msg("Database tables initialized")
	return nil
}
