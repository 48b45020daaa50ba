package apperrors

import "errors"

// Common errors
var (
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")
	ErrValidationFailed = errors.New("validation failed")
	// ErrStore marks failures reported by the database that are not constraint violations
	ErrStore = errors.New("store error")
)

// Constraint errors
var (
	ErrDuplicateRegNumber = errors.New("registration number already exists")
	ErrDuplicateSubject   = errors.New("subject already exists for this year and department")
	ErrUnknownStudent     = errors.New("referenced student does not exist")
)

// NewValidationError creates a validation error carrying a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStoreError wraps a raw database error so its text reaches the caller unchanged
func NewStoreError(err error) error {
	return &CustomError{
		Err:     errors.Join(ErrStore, err),
		Message: err.Error(),
	}
}

// NewConstraintError reports a constraint violation. The store's own message is kept
// as the error text; kind and class (ErrConflict or ErrBadRequest) stay matchable.
func NewConstraintError(class, kind, storeErr error) error {
	return &CustomError{
		Err:     errors.Join(class, kind, storeErr),
		Message: storeErr.Error(),
	}
}

// WithPrefix keeps err matchable while prefixing its user-facing message
func WithPrefix(err error, prefix string) error {
	return &CustomError{
		Err:     err,
		Message: prefix + ": " + err.Error(),
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
