package dto

import "github.com/yigit/marksportal/internal/app/models"

// MarkEntry is one record of a bulk marks submission
type MarkEntry struct {
	StudentID      int64  `json:"student_id" binding:"required,gt=0"`
	SubjectCode    string `json:"subject_code" binding:"required,notblank"`
	SubjectName    string `json:"subject_name" binding:"required,notblank"`
	AssessmentType string `json:"assessment_type" binding:"required,notblank"`
	// Marks is a pointer so that a score of 0 still counts as present
	Marks        *int   `json:"marks" binding:"required"`
	AcademicYear string `json:"academic_year" binding:"required,notblank"`
}

// BulkMarksRequest is the body of a bulk marks submission
type BulkMarksRequest struct {
	Marks []MarkEntry `json:"marks" binding:"required,dive"`
}

// ToModels converts the entries into mark models
func (r BulkMarksRequest) ToModels() []models.Mark {
	marks := make([]models.Mark, 0, len(r.Marks))
	for _, e := range r.Marks {
		m := models.Mark{
			StudentID:      e.StudentID,
			SubjectCode:    e.SubjectCode,
			SubjectName:    e.SubjectName,
			AssessmentType: e.AssessmentType,
			AcademicYear:   e.AcademicYear,
		}
		if e.Marks != nil {
			m.Marks = *e.Marks
		}
		marks = append(marks, m)
	}
	return marks
}

// MarkQuery selects the marks of one class. AcademicYear falls back to the
// legacy "year" parameter.
type MarkQuery struct {
	AssessmentType string `form:"assessment_type"`
	AcademicYear   string `form:"academic_year"`
	Year           string `form:"year"`
	Department     string `form:"department"`
	Section        string `form:"section"`
	SubjectCode    string `form:"subject_code"`
}

func (q MarkQuery) academicYear() string {
	if q.AcademicYear != "" {
		return q.AcademicYear
	}
	return q.Year
}

// ToFilter converts the query into a mark filter
func (q MarkQuery) ToFilter() models.MarkFilter {
	return models.MarkFilter{
		AssessmentType: q.AssessmentType,
		AcademicYear:   q.academicYear(),
		Department:     q.Department,
		Section:        q.Section,
		SubjectCode:    q.SubjectCode,
	}
}

// ToReportFilter converts the query into a performance report filter
func (q MarkQuery) ToReportFilter() models.ReportFilter {
	return models.ReportFilter{
		AssessmentType: q.AssessmentType,
		AcademicYear:   q.academicYear(),
		Department:     q.Department,
		Section:        q.Section,
		SubjectCode:    q.SubjectCode,
	}
}

// MarkListResponse wraps a list of marks
type MarkListResponse struct {
	Marks []models.MarkWithStudent `json:"marks"`
}

// BulkMarksResponse reports a successful bulk submission
type BulkMarksResponse struct {
	Message string `json:"message"`
	Saved   int    `json:"saved"`
}
