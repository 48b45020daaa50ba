package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/db"
	"github.com/yigit/marksportal/internal/pkg/apperrors"
	"github.com/yigit/marksportal/internal/pkg/logger"
)

// subjectRepository handles database operations for subjects
type subjectRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(database *db.DB) SubjectRepository {
	return &subjectRepository{
		db: database,
		sb: database.Builder(),
	}
}

// List returns subjects, narrowed to one year of a department when the filter is set
func (r *subjectRepository) List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	query := r.sb.Select("id", "year", "department", "semester", "subject_code", "subject_name", "created_at").
		From("subjects")

	if filter.IsSet() {
		query = query.Where(squirrel.Eq{"year": filter.Year, "department": filter.Department})
	}

	sqlStr, args, err := query.OrderBy("year", "semester", "subject_code").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list subjects SQL")
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(
			&s.ID,
			&s.Year,
			&s.Department,
			&s.Semester,
			&s.SubjectCode,
			&s.SubjectName,
			&s.CreatedAt,
		); err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		subjects = append(subjects, s)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return subjects, nil
}

// Create inserts a subject and returns its generated id
func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	sqlStr, args, err := r.sb.Insert("subjects").
		Columns("year", "department", "semester", "subject_code", "subject_name").
		Values(subject.Year, subject.Department, subject.Semester, subject.SubjectCode, subject.SubjectName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subject SQL")
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, classifyWriteError(err, apperrors.ErrDuplicateSubject)
	}

	subject.ID = id
	return id, nil
}

// Delete removes a subject by id. Marks keep their copy of the subject code and name.
func (r *subjectRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("subjects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}

// Count returns the number of subjects
func (r *subjectRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "subjects")
}
