package constants

// HTTP Header Names
const (
	HeaderContentType        = "Content-Type"
	HeaderUserAgent          = "User-Agent"
	HeaderAllow              = "Allow"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// HTTP Content Types
const (
	ContentTypeJSON = "application/json"
)

// Common HTTP Error Messages
const (
	MsgMethodNotAllowed     = "Method not allowed"
	MsgInvalidJSON          = "Invalid JSON format"
	MsgValidationFailed     = "Validation failed"
	MsgOrderValidationFail  = "Order validation failed"
	MsgContactRateLimited   = "Rate limit exceeded. Please try again later."
	MsgOrderRateLimited     = "Too many order requests. Please try again later."
	MsgContactInternalError = "Internal server error. Please try again later."
	MsgOrderInternalError   = "Failed to process order. Please try again later."
	MsgOrderLookupError     = "Failed to retrieve order status"
)

// HTTP Success Messages
const (
	MsgContactAccepted = "Your inquiry has been submitted successfully. We will get back to you soon."
	MsgOrderAccepted   = "Order submitted successfully. You will receive a confirmation email shortly."
)
