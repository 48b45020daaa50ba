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

// reportRepository runs reporting aggregations
type reportRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new report repository
func NewReportRepository(database *db.DB) ReportRepository {
	return &reportRepository{
		db: database,
		sb: database.Builder(),
	}
}

// CategoryStats counts passes and fails per student category for one subject
// assessment. Section "all" spans every section of the department.
func (r *reportRepository) CategoryStats(ctx context.Context, filter models.ReportFilter) ([]models.CategoryStats, error) {
	where := squirrel.Eq{
		"m.assessment_type": filter.AssessmentType,
		"m.academic_year":   filter.AcademicYear,
		"s.department":      filter.Department,
		"m.subject_code":    filter.SubjectCode,
	}
	if !filter.SpansAllSections() {
		where["s.section"] = filter.Section
	}

	sqlStr, args, err := r.sb.Select("s.category", "COUNT(*) AS total").
		Column(squirrel.Expr("SUM(CASE WHEN m.marks >= ? THEN 1 ELSE 0 END) AS pass", models.PassMark)).
		Column(squirrel.Expr("SUM(CASE WHEN m.marks < ? THEN 1 ELSE 0 END) AS fail", models.PassMark)).
		From("marks m").
		Join("students s ON m.student_id = s.id").
		Where(where).
		GroupBy("s.category").
		OrderBy("s.category").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building category stats SQL")
		return nil, fmt.Errorf("failed to build category stats query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	stats := make([]models.CategoryStats, 0)
	for rows.Next() {
		var c models.CategoryStats
		if err := rows.Scan(&c.Category, &c.Total, &c.Pass, &c.Fail); err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		stats = append(stats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return stats, nil
}
