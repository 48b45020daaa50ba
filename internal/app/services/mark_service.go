package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/app/repositories"
	"github.com/yigit/marksportal/internal/pkg/apperrors"
)

// MarkService defines the interface for mark-related operations
type MarkService interface {
	ListMarks(ctx context.Context, filter models.MarkFilter) ([]models.MarkWithStudent, error)
	SaveMarks(ctx context.Context, marks []models.Mark) (int, error)
}

type markServiceImpl struct {
	markRepo repositories.MarkRepository
}

// NewMarkService creates a new mark service instance
func NewMarkService(markRepo repositories.MarkRepository) MarkService {
	return &markServiceImpl{
		markRepo: markRepo,
	}
}

// ListMarks returns the mark sheet of one class for one subject assessment.
// Every filter is required.
func (s *markServiceImpl) ListMarks(ctx context.Context, filter models.MarkFilter) ([]models.MarkWithStudent, error) {
	if missing := filter.Missing(); len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required filters: " + strings.Join(missing, ", "))
	}

	marks, err := s.markRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving marks: %w", err)
	}
	return marks, nil
}

// validateMark checks one record of a submission
func validateMark(m models.Mark) error {
	if m.StudentID <= 0 {
		return apperrors.NewValidationError("student_id must be positive")
	}
	return requireFields(
		field{"subject_code", m.SubjectCode},
		field{"subject_name", m.SubjectName},
		field{"assessment_type", m.AssessmentType},
		field{"academic_year", m.AcademicYear},
	)
}

// SaveMarks validates every record and then upserts the batch atomically.
// It returns the number of records written.
func (s *markServiceImpl) SaveMarks(ctx context.Context, marks []models.Mark) (int, error) {
	for i, m := range marks {
		if err := validateMark(m); err != nil {
			return 0, apperrors.WithPrefix(err, fmt.Sprintf("marks[%d]", i))
		}
	}

	if err := s.markRepo.BulkUpsert(ctx, marks); err != nil {
		return 0, fmt.Errorf("error saving marks: %w", err)
	}
	return len(marks), nil
}
