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

// upsertMarkSuffix replaces the score of an existing (student, subject,
// assessment, academic year) row instead of failing on the unique key.
const upsertMarkSuffix = `ON CONFLICT (student_id, subject_code, assessment_type, academic_year)
	DO UPDATE SET subject_name = excluded.subject_name, marks = excluded.marks`

// markRepository handles database operations for marks
type markRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewMarkRepository creates a new mark repository
func NewMarkRepository(database *db.DB) MarkRepository {
	return &markRepository{
		db: database,
		sb: database.Builder(),
	}
}

// List returns the marks of one class section for one subject assessment
func (r *markRepository) List(ctx context.Context, filter models.MarkFilter) ([]models.MarkWithStudent, error) {
	sqlStr, args, err := r.sb.Select(
		"m.id", "m.student_id", "m.subject_code", "m.subject_name", "m.assessment_type",
		"m.marks", "m.academic_year", "m.created_at",
		"s.reg_number", "s.full_name", "s.category",
	).
		From("marks m").
		Join("students s ON m.student_id = s.id").
		Where(squirrel.Eq{
			"m.assessment_type": filter.AssessmentType,
			"m.academic_year":   filter.AcademicYear,
			"s.department":      filter.Department,
			"s.section":         filter.Section,
			"m.subject_code":    filter.SubjectCode,
		}).
		OrderBy("s.reg_number").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list marks SQL")
		return nil, fmt.Errorf("failed to build list marks query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	marks := make([]models.MarkWithStudent, 0)
	for rows.Next() {
		var m models.MarkWithStudent
		if err := rows.Scan(
			&m.ID,
			&m.StudentID,
			&m.SubjectCode,
			&m.SubjectName,
			&m.AssessmentType,
			&m.Marks,
			&m.AcademicYear,
			&m.CreatedAt,
			&m.RegNumber,
			&m.FullName,
			&m.Category,
		); err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		marks = append(marks, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return marks, nil
}

// BulkUpsert writes every mark inside one transaction. The first failing
// record aborts the batch and nothing from it is kept.
func (r *markRepository) BulkUpsert(ctx context.Context, marks []models.Mark) error {
	if len(marks) == 0 {
		return nil
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for i, mark := range marks {
			if err := r.upsert(ctx, tx, mark); err != nil {
				logger.Warn().Err(err).Int("index", i).Int64("studentID", mark.StudentID).Msg("Mark upsert failed, rolling back batch")
				return apperrors.WithPrefix(err, fmt.Sprintf("mark %d", i))
			}
		}
		return nil
	})
}

func (r *markRepository) upsert(ctx context.Context, q db.Querier, mark models.Mark) error {
	sqlStr, args, err := r.sb.Insert("marks").
		Columns("student_id", "subject_code", "subject_name", "assessment_type", "marks", "academic_year").
		Values(mark.StudentID, mark.SubjectCode, mark.SubjectName, mark.AssessmentType, mark.Marks, mark.AcademicYear).
		Suffix(upsertMarkSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert mark query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlStr, args...); err != nil {
		return classifyWriteError(err, apperrors.ErrConflict)
	}
	return nil
}

// Count returns the number of stored marks
func (r *markRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "marks")
}
