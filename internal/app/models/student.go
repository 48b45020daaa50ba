package models

import "time"

// StudentListLimit caps the general student listing
const StudentListLimit = 10

// Student represents an enrolled student
type Student struct {
	ID         int64     `json:"id"`
	RegNumber  string    `json:"reg_number"`
	FullName   string    `json:"full_name"`
	Year       string    `json:"year"`
	Department string    `json:"department"`
	Section    string    `json:"section"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
}

// StudentFilter narrows a student listing. Empty fields are unset.
type StudentFilter struct {
	Year       string
	Department string
	Section    string
}

// HasClass reports whether year, department and section are all set
func (f StudentFilter) HasClass() bool {
	return f.Year != "" && f.Department != "" && f.Section != ""
}

// HasYearAndDepartment reports whether both year and department are set
func (f StudentFilter) HasYearAndDepartment() bool {
	return f.Year != "" && f.Department != ""
}
