package models

import "time"

// APIResponse is the envelope the account service uses for failures
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(msg string) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     msg,
		Timestamp: time.Now(),
	}
}
