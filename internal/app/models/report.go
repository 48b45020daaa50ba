package models

import (
	"math"
	"strconv"
)

// PassMark is the lowest score counted as a pass
const PassMark = 40

// AllSections disables the section filter of a performance report
const AllSections = "all"

// DashboardStats holds the row counts shown on the dashboard
type DashboardStats struct {
	TotalStudents     int64 `json:"totalStudents"`
	TotalSubjects     int64 `json:"totalSubjects"`
	TotalMarksEntries int64 `json:"totalMarksEntries"`
}

// ReportFilter selects the marks a performance report aggregates
type ReportFilter struct {
	AssessmentType string
	AcademicYear   string
	Department     string
	Section        string
	SubjectCode    string
}

// SpansAllSections reports whether the report spans every section of the department
func (f ReportFilter) SpansAllSections() bool {
	return f.Section == AllSections
}

// CategoryStats is the pass/fail breakdown for one student category
type CategoryStats struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Pass     int64  `json:"pass"`
	Fail     int64  `json:"fail"`
}

// Totals sums the category breakdowns
type Totals struct {
	Total int64 `json:"total"`
	Pass  int64 `json:"pass"`
	Fail  int64 `json:"fail"`
}

// Add accumulates one category into the totals
func (t *Totals) Add(c CategoryStats) {
	t.Total += c.Total
	t.Pass += c.Pass
	t.Fail += c.Fail
}

// PassPercentage is pass/total*100. It marshals as a two decimal string such
// as "30.00", or as the number 0 when nothing was graded.
type PassPercentage struct {
	Pass  int64
	Total int64
}

// Value returns the percentage rounded to two decimals
func (p PassPercentage) Value() float64 {
	if p.Total <= 0 {
		return 0
	}
	return math.Round(float64(p.Pass)/float64(p.Total)*100*100) / 100
}

// String formats the percentage with two decimals
func (p PassPercentage) String() string {
	return strconv.FormatFloat(p.Value(), 'f', 2, 64)
}

// MarshalJSON implements json.Marshaler
func (p PassPercentage) MarshalJSON() ([]byte, error) {
	if p.Total <= 0 {
		return []byte("0"), nil
	}
	return []byte(strconv.Quote(p.String())), nil
}

// PerformanceReport is the pass/fail report for one subject assessment
type PerformanceReport struct {
	CategoryStats  []CategoryStats `json:"categoryStats"`
	Totals         Totals          `json:"totals"`
	PassPercentage PassPercentage  `json:"passPercentage"`
}

// NewPerformanceReport derives totals and the pass percentage from the breakdown
func NewPerformanceReport(stats []CategoryStats) *PerformanceReport {
	if stats == nil {
		stats = []CategoryStats{}
	}

	report := &PerformanceReport{CategoryStats: stats}
	for _, c := range stats {
		report.Totals.Add(c)
	}
	report.PassPercentage = PassPercentage{Pass: report.Totals.Pass, Total: report.Totals.Total}
	return report
}
