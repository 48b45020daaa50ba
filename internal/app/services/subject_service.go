package services

import (
	"context"
	"fmt"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/app/repositories"
	"github.com/yigit/marksportal/internal/pkg/apperrors"
)

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
	CreateSubject(ctx context.Context, subject *models.Subject) (int64, error)
	DeleteSubject(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	subjectRepo repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo repositories.SubjectRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
	}
}

// ListSubjects retrieves subjects, filtered only when year and department are both given
func (s *subjectServiceImpl) ListSubjects(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	subjects, err := s.subjectRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// CreateSubject creates a new subject
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) (int64, error) {
	if subject == nil {
		return 0, fmt.Errorf("%w: subject is nil", apperrors.ErrValidationFailed)
	}
	if err := requireFields(
		field{"year", subject.Year},
		field{"department", subject.Department},
		field{"semester", subject.Semester},
		field{"subject_code", subject.SubjectCode},
		field{"subject_name", subject.SubjectName},
	); err != nil {
		return 0, err
	}

	id, err := s.subjectRepo.Create(ctx, subject)
	if err != nil {
		return 0, fmt.Errorf("error creating subject: %w", err)
	}
	return id, nil
}

// DeleteSubject deletes a subject by ID; unknown IDs are not an error
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	return nil
}
