package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse reports the identifier of a newly created record
type CreatedResponse struct {
	Message string      `json:"message"`
	Data    CreatedData `json:"data"`
}

// CreatedData carries the generated identifier
type CreatedData struct {
	ID int64 `json:"id"`
}

// NewCreatedResponse builds a CreatedResponse
func NewCreatedResponse(message string, id int64) CreatedResponse {
	return CreatedResponse{
		Message: message,
		Data:    CreatedData{ID: id},
	}
}
