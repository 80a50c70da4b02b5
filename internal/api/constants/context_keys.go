package constants

// Context keys set by middleware
const (
	ContextKeyRequestID = "requestID"
	ContextKeyAdminUID  = "adminUID"
)

// Headers read or written by middleware
const (
	HeaderRequestID = "X-Request-ID"
	HeaderAdminKey  = "X-Admin-Token"
)
