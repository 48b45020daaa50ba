package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom rule tags usable in binding tags
const (
	// NotBlankTag rejects strings made only of whitespace
	NotBlankTag = "notblank"
)

// RegisterRules installs the custom rules on a validator instance
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(NotBlankTag, notBlank)
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return !IsBlank(field.String())
}

// IsBlank reports whether s is empty once surrounding whitespace is removed
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
