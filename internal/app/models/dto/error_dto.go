package dto

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Student not found"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{Error: &ErrorDetail{Code: code, Message: message}}
}
