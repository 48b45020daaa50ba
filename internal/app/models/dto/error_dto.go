package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"UNIQUE constraint failed: students.reg_number"`
}

// NewErrorResponse creates an error response from a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
