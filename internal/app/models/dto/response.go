package dto

// MessageResponse represents a standard success message for endpoints
// that return no entity body
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a success message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
