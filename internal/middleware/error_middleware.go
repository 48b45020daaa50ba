package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/app/models/dto"
	"github.com/yigit/marksportal/internal/pkg/apperrors"
	"github.com/yigit/marksportal/internal/pkg/logger"
)

// HandleAPIError maps an error onto a status code and writes {"error": message}.
// Store errors keep the database's own message.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	message := userMessage(err)

	switch {
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrStore):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store error")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

// userMessage prefers the message of the outermost application error
func userMessage(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		return customErr.Error()
	}
	return err.Error()
}

// AbortWithError writes an error response and stops the handler chain
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}
