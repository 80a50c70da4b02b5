package common

// User-facing messages. Internal error detail never reaches a response body.
const (
	MessageContactSent       = "Your message has been sent successfully!"
	MessageContactInvalid    = "Please provide name, email and message"
	MessageContactCaptcha    = "Spam check failed. Please try again."
	MessageContactThrottled  = "Too many messages. Please try again later."
	MessageContactFailed     = "There was an error sending your message. Please try again later."
	MessageProjectInvalid    = "Please provide title and description"
	MessageServerError       = "Server Error"
	MessageUnauthorized      = "Authentication required"
	MessageForbidden         = "Admin access required"
	MessageRateLimitExceeded = "Rate limit exceeded. Please try again later."
	MessageNotFound          = "Not Found"
)

// ContactResponse is the body of every contact form reply
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a standardized message response structure
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness of the API and its store
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// NewContactResponse creates a contact form reply
func NewContactResponse(success bool, message string) ContactResponse {
	return ContactResponse{Success: success, Message: message}
}

// NewMessageResponse creates a response with a simple message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
