package models

import (
	"time"

	"github.com/yigit/marksportal/internal/pkg/validation"
)

// Mark is one score of a student for a subject assessment in an academic year.
// (StudentID, SubjectCode, AssessmentType, AcademicYear) identifies it.
type Mark struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	SubjectCode    string    `json:"subject_code"`
	SubjectName    string    `json:"subject_name"`
	AssessmentType string    `json:"assessment_type"`
	Marks          int       `json:"marks"`
	AcademicYear   string    `json:"academic_year"`
	CreatedAt      time.Time `json:"created_at"`
}

// MarkWithStudent is a mark joined with the owning student's identity
type MarkWithStudent struct {
	Mark
	RegNumber string `json:"reg_number"`
	FullName  string `json:"full_name"`
	Category  string `json:"category"`
}

// MarkFilter selects the marks of one class for one subject assessment
type MarkFilter struct {
	AssessmentType string
	AcademicYear   string
	Department     string
	Section        string
	SubjectCode    string
}

// Missing returns the query names of the unset fields
func (f MarkFilter) Missing() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"assessment_type", f.AssessmentType},
		{"academic_year", f.AcademicYear},
		{"department", f.Department},
		{"section", f.Section},
		{"subject_code", f.SubjectCode},
	} {
		if validation.IsBlank(field.value) {
			missing = append(missing, field.name)
		}
	}
	return missing
}
