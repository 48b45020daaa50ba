package dto

import "github.com/yigit/marksportal/internal/app/models"

// CreateSubjectRequest represents subject creation data
type CreateSubjectRequest struct {
	Year        string `json:"year" binding:"required,notblank"`
	Department  string `json:"department" binding:"required,notblank"`
	Semester    string `json:"semester" binding:"required,notblank"`
	SubjectCode string `json:"subject_code" binding:"required,notblank"`
	SubjectName string `json:"subject_name" binding:"required,notblank"`
}

// ToModel converts the request into a subject model
func (r CreateSubjectRequest) ToModel() *models.Subject {
	return &models.Subject{
		Year:        r.Year,
		Department:  r.Department,
		Semester:    r.Semester,
		SubjectCode: r.SubjectCode,
		SubjectName: r.SubjectName,
	}
}

// SubjectQuery holds the optional year/department pair
type SubjectQuery struct {
	Year       string `form:"year"`
	Department string `form:"department"`
}

// SubjectListResponse wraps a list of subjects
type SubjectListResponse struct {
	Subjects []models.Subject `json:"subjects"`
}
