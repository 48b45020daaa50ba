package services

import (
	"context"
	"fmt"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/app/repositories"
	"github.com/yigit/marksportal/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	ListClassRoster(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// ListStudents returns at most models.StudentListLimit students, newest first
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.studentRepo.List(ctx, filter, models.StudentListLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ListClassRoster returns every student of a class. Year, department and
// section are all required; nothing is queried when one is missing.
func (s *studentServiceImpl) ListClassRoster(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	if !filter.HasClass() {
		return nil, apperrors.NewValidationError("Year, department, and section are required")
	}

	students, err := s.studentRepo.ListByClass(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class roster: %w", err)
	}
	return students, nil
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	return requireFields(
		field{"reg_number", student.RegNumber},
		field{"full_name", student.FullName},
		field{"year", student.Year},
		field{"department", student.Department},
		field{"section", student.Section},
		field{"category", student.Category},
	)
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// DeleteStudent deletes a student and, through the foreign key, its marks.
// Deleting an unknown id succeeds.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
