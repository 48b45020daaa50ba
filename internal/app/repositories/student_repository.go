package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/db"
	"github.com/yigit/marksportal/internal/pkg/apperrors"
	"github.com/yigit/marksportal/internal/pkg/logger"
)

var studentColumns = []string{
	"id", "reg_number", "full_name", "year", "department", "section", "category", "created_at",
}

// studentRepository handles database operations for students
type studentRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.DB) StudentRepository {
	return &studentRepository{
		db: database,
		sb: database.Builder(),
	}
}

// List returns the most recently created students. The filter applies only as
// a full class (year, department, section) or as year plus department; any
// other combination lists everyone.
func (r *studentRepository) List(ctx context.Context, filter models.StudentFilter, limit uint64) ([]models.Student, error) {
	query := r.sb.Select(studentColumns...).From("students")

	switch {
	case filter.HasClass():
		query = query.Where(squirrel.Eq{
			"year":       filter.Year,
			"department": filter.Department,
			"section":    filter.Section,
		})
	case filter.HasYearAndDepartment():
		query = query.Where(squirrel.Eq{
			"year":       filter.Year,
			"department": filter.Department,
		})
	}

	query = query.OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}
	return r.query(ctx, sqlStr, args...)
}

// ListByClass returns every student of one class section
func (r *studentRepository) ListByClass(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	sqlStr, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{
			"year":       filter.Year,
			"department": filter.Department,
			"section":    filter.Section,
		}).
		OrderBy("reg_number").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building class roster SQL")
		return nil, fmt.Errorf("failed to build class roster query: %w", err)
	}
	return r.query(ctx, sqlStr, args...)
}

func (r *studentRepository) query(ctx context.Context, sqlStr string, args ...interface{}) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return students, nil
}

func scanStudent(rows *sql.Rows) (models.Student, error) {
	var s models.Student
	err := rows.Scan(
		&s.ID,
		&s.RegNumber,
		&s.FullName,
		&s.Year,
		&s.Department,
		&s.Section,
		&s.Category,
		&s.CreatedAt,
	)
	return s, err
}

// Create inserts a student and returns its generated id
func (r *studentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sqlStr, args, err := r.sb.Insert("students").
		Columns("reg_number", "full_name", "year", "department", "section", "category").
		Values(student.RegNumber, student.FullName, student.Year, student.Department, student.Section, student.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, classifyWriteError(err, apperrors.ErrDuplicateRegNumber)
	}

	student.ID = id
	return id, nil
}

// Delete removes a student by id. Removing a missing id is not an error.
func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}

// Count returns the number of students
func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "students")
}

// countRows runs SELECT COUNT(*) on a table
func countRows(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sqlStr, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", table, err)
	}

	var count int64
	if err := q.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, apperrors.NewStoreError(err)
	}
	return count, nil
}
