package services

import (
	"context"

	"github.com/yigit/marksportal/internal/app/models"
)

type fakeStudentRepo struct {
	students  []models.Student
	lastLimit uint64
	listCalls int
	created   []*models.Student
	deleted   []int64
	count     int64
	err       error
}

func (f *fakeStudentRepo) List(_ context.Context, _ models.StudentFilter, limit uint64) ([]models.Student, error) {
	f.listCalls++
	f.lastLimit = limit
	return f.students, f.err
}

func (f *fakeStudentRepo) ListByClass(_ context.Context, _ models.StudentFilter) ([]models.Student, error) {
	f.listCalls++
	return f.students, f.err
}

func (f *fakeStudentRepo) Create(_ context.Context, s *models.Student) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, s)
	return int64(len(f.created)), nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeStudentRepo) Count(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeSubjectRepo struct {
	created []*models.Subject
	count   int64
	err     error
}

func (f *fakeSubjectRepo) List(context.Context, models.SubjectFilter) ([]models.Subject, error) {
	return []models.Subject{}, f.err
}

func (f *fakeSubjectRepo) Create(_ context.Context, s *models.Subject) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, s)
	return int64(len(f.created)), nil
}

func (f *fakeSubjectRepo) Delete(context.Context, int64) error {
	return f.err
}

func (f *fakeSubjectRepo) Count(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeMarkRepo struct {
	batches   [][]models.Mark
	listCalls int
	count     int64
	err       error
}

func (f *fakeMarkRepo) List(context.Context, models.MarkFilter) ([]models.MarkWithStudent, error) {
	f.listCalls++
	return []models.MarkWithStudent{}, f.err
}

func (f *fakeMarkRepo) BulkUpsert(_ context.Context, marks []models.Mark) error {
	f.batches = append(f.batches, marks)
	return f.err
}

func (f *fakeMarkRepo) Count(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeReportRepo struct {
	stats      []models.CategoryStats
	lastFilter models.ReportFilter
	calls      int
	err        error
}

func (f *fakeReportRepo) CategoryStats(_ context.Context, filter models.ReportFilter) ([]models.CategoryStats, error) {
	f.calls++
	f.lastFilter = filter
	return f.stats, f.err
}
