package services

import (
	"context"
	"fmt"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/app/repositories"
)

// ReportService defines the interface for reporting operations
type ReportService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	PerformanceReport(ctx context.Context, filter models.ReportFilter) (*models.PerformanceReport, error)
}

type reportServiceImpl struct {
	repos *repositories.Repositories
}

// NewReportService creates a new report service instance
func NewReportService(repos *repositories.Repositories) ReportService {
	return &reportServiceImpl{
		repos: repos,
	}
}

// DashboardStats counts students, subjects and marks one after another and
// stops at the first failure.
func (s *reportServiceImpl) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)

	if stats.TotalStudents, err = s.repos.StudentRepository.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	if stats.TotalSubjects, err = s.repos.SubjectRepository.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting subjects: %w", err)
	}
	if stats.TotalMarksEntries, err = s.repos.MarkRepository.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting marks: %w", err)
	}

	return &stats, nil
}

// PerformanceReport groups the matching marks by student category and derives
// the totals and pass percentage.
func (s *reportServiceImpl) PerformanceReport(ctx context.Context, filter models.ReportFilter) (*models.PerformanceReport, error) {
	if err := requireFields(
		field{"assessment_type", filter.AssessmentType},
		field{"academic_year", filter.AcademicYear},
		field{"department", filter.Department},
		field{"section", filter.Section},
		field{"subject_code", filter.SubjectCode},
	); err != nil {
		return nil, err
	}

	stats, err := s.repos.ReportRepository.CategoryStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error building performance report: %w", err)
	}
	return models.NewPerformanceReport(stats), nil
}
