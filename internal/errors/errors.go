package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Submission pipeline errors
	ErrThrottled        = NewDomainError("THROTTLED", "rate limit exceeded")
	ErrMalformedPayload = NewDomainError("MALFORMED_PAYLOAD", "request body is not valid JSON")
	ErrValidationFailed = NewDomainError("VALIDATION_FAILED", "one or more fields failed validation")

	// Order business-rule errors (cross-field, checked after schema validation)
	ErrInvalidOrderTotal  = NewDomainError("INVALID_ORDER_TOTAL", "Invalid order total amount")
	ErrOrderTotalExceeded = NewDomainError("ORDER_TOTAL_EXCEEDED", "Order amount exceeds maximum limit")

	// Lookup errors
	ErrOrderIDRequired = NewDomainError("ORDER_ID_REQUIRED", "Order ID is required")
	ErrInvalidOrderID  = NewDomainError("INVALID_ORDER_ID", "Invalid order ID format")
	ErrOrderNotFound   = NewDomainError("ORDER_NOT_FOUND", "Order not found")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "MALFORMED_PAYLOAD", "VALIDATION_FAILED", "INVALID_ORDER_TOTAL",
		"ORDER_TOTAL_EXCEEDED", "ORDER_ID_REQUIRED", "INVALID_ORDER_ID":
		return http.StatusBadRequest

	// 404 Not Found
	case "ORDER_NOT_FOUND":
		return http.StatusNotFound

	// 429 Too Many Requests
	case "THROTTLED":
		return http.StatusTooManyRequests

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
