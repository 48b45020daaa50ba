package models

import "time"

// Subject is a course offered to a year of a department
type Subject struct {
	ID          int64     `json:"id"`
	Year        string    `json:"year"`
	Department  string    `json:"department"`
	Semester    string    `json:"semester"`
	SubjectCode string    `json:"subject_code"`
	SubjectName string    `json:"subject_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubjectFilter applies only when both fields are set
type SubjectFilter struct {
	Year       string
	Department string
}

// IsSet reports whether the filter narrows the listing
func (f SubjectFilter) IsSet() bool {
	return f.Year != "" && f.Department != ""
}
