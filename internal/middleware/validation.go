package middleware

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/marksportal/internal/pkg/logger"
	"github.com/yigit/marksportal/internal/pkg/validation"
)

var setupOnce sync.Once

// SetupValidator installs the custom rules on gin's validator and makes it
// report fields by their json (or form) names instead of Go field names.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := validation.RegisterRules(v); err != nil {
			logger.Error().Err(err).Msg("Failed to register validation rules")
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = fld.Tag.Get("form")
			}
			return name
		})
	})
}

// BindingErrorMessage renders a bind or validation error for API clients
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, formatValidationError(e))
	}
	return strings.Join(messages, "; ")
}

// fieldPath drops the root struct name: "BulkMarksRequest.marks[1].marks" -> "marks[1].marks"
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := fieldPath(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case validation.NotBlankTag:
		return field + " must not be blank"
	case "gt":
		return field + " must be greater than " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
