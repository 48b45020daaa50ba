package repositories

import (
	"github.com/yigit/marksportal/internal/pkg/apperrors"
	"github.com/yigit/marksportal/internal/pkg/dberrors"
)

// classifyWriteError turns constraint violations into application errors that
// still carry the store's own message. Anything else is passed through as a
// store error.
func classifyWriteError(err error, duplicateKind error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConstraintError(apperrors.ErrConflict, duplicateKind, err)
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewConstraintError(apperrors.ErrBadRequest, apperrors.ErrUnknownStudent, err)
	default:
		return apperrors.NewStoreError(err)
	}
}
