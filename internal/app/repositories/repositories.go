package repositories

import (
	"context"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/db"
)

// StudentRepository persists students
type StudentRepository interface {
	List(ctx context.Context, filter models.StudentFilter, limit uint64) ([]models.Student, error)
	ListByClass(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// SubjectRepository persists subjects
type SubjectRepository interface {
	List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) (int64, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// MarkRepository persists marks
type MarkRepository interface {
	List(ctx context.Context, filter models.MarkFilter) ([]models.MarkWithStudent, error)
	BulkUpsert(ctx context.Context, marks []models.Mark) error
	Count(ctx context.Context) (int64, error)
}

// ReportRepository runs the reporting aggregations
type ReportRepository interface {
	CategoryStats(ctx context.Context, filter models.ReportFilter) ([]models.CategoryStats, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository StudentRepository
	SubjectRepository SubjectRepository
	MarkRepository    MarkRepository
	ReportRepository  ReportRepository
}

// NewRepositories initializes all repositories over one store handle
func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(database),
		SubjectRepository: NewSubjectRepository(database),
		MarkRepository:    NewMarkRepository(database),
		ReportRepository:  NewReportRepository(database),
	}
}
