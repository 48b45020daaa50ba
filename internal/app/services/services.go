package services

import (
	"github.com/yigit/marksportal/internal/pkg/apperrors"
	"github.com/yigit/marksportal/internal/pkg/validation"
)

// Services defined in this package:
// - StudentService: student listing, class rosters, creation and deletion
// - SubjectService: subject listing, creation and deletion
// - MarkService: class mark sheets and bulk mark submission
// - ReportService: dashboard counts and the pass/fail performance report

// field is a named value checked by requireFields
type field struct {
	name  string
	value string
}

// requireFields fails on the first blank field, naming it
func requireFields(fields ...field) error {
	for _, f := range fields {
		if validation.IsBlank(f.value) {
			return apperrors.NewValidationError(f.name + " is required")
		}
	}
	return nil
}
