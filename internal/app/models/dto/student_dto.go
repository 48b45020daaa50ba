package dto

import "github.com/yigit/marksportal/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	RegNumber  string `json:"reg_number" binding:"required,notblank"`
	FullName   string `json:"full_name" binding:"required,notblank"`
	Year       string `json:"year" binding:"required,notblank"`
	Department string `json:"department" binding:"required,notblank"`
	Section    string `json:"section" binding:"required,notblank"`
	Category   string `json:"category" binding:"required,notblank"`
}

// ToModel converts the request into a student model
func (r CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		RegNumber:  r.RegNumber,
		FullName:   r.FullName,
		Year:       r.Year,
		Department: r.Department,
		Section:    r.Section,
		Category:   r.Category,
	}
}

// StudentQuery holds the optional class filters of a student listing
type StudentQuery struct {
	Year       string `form:"year"`
	Department string `form:"department"`
	Section    string `form:"section"`
}

// ToFilter converts the query into a student filter
func (q StudentQuery) ToFilter() models.StudentFilter {
	return models.StudentFilter{
		Year:       q.Year,
		Department: q.Department,
		Section:    q.Section,
	}
}

// StudentListResponse wraps a list of students
type StudentListResponse struct {
	Students []models.Student `json:"students"`
}
