package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse creates a success response wrapping data
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a plain confirmation message
type SuccessResponse struct {
	Message string `json:"message"`
}
