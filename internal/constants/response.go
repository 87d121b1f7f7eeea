package constants

import "time"

// Standard Response Field Keys
const (
	ResponseFieldSuccess    = "success"
	ResponseFieldMessage    = "message"
	ResponseFieldError      = "error"
	ResponseFieldDetails    = "details"
	ResponseFieldRetryAfter = "retryAfter"
	ResponseFieldTimestamp  = "timestamp"
	ResponseFieldInquiryID  = "inquiryId"
	ResponseFieldOrder      = "order"
)

// Response Format Functions

// BuildErrorResponse shapes a rejection body. Every rejection carries
// success=false plus a human-readable error string; details is attached
// only when there is a machine-readable violation list.
func BuildErrorResponse(errMsg string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldSuccess: false,
		ResponseFieldError:   errMsg,
	}

	if details != nil {
		response[ResponseFieldDetails] = details
	}

	return response
}

// BuildThrottleResponse shapes a 429 body with the retry-after hint.
func BuildThrottleResponse(errMsg string, retryAfter int64) map[string]any {
	return map[string]any{
		ResponseFieldSuccess:    false,
		ResponseFieldError:      errMsg,
		ResponseFieldRetryAfter: retryAfter,
	}
}

// BuildInternalErrorResponse shapes a 500 body with a correlation timestamp.
func BuildInternalErrorResponse(errMsg string) map[string]any {
	return map[string]any{
		ResponseFieldSuccess:   false,
		ResponseFieldError:     errMsg,
		ResponseFieldTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
