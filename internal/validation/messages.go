package validation

import (
	"fmt"
	"strings"
)

// Per-field messages keyed by json field name then failing tag. The strings
// mirror the copy the website's form handling expects, so they are part of
// the API contract and must not be reworded casually.
var customMessages = map[string]map[string]string{
	"name": {
		"required":   "Name is required",
		"min":        "Name must be at least 2 characters",
		"max":        "Name must be less than 100 characters",
		"personname": "Name can only contain letters and spaces",
	},
	"email": {
		"required": "Email is required",
		"email":    "Invalid email format",
		"max":      "Email must be less than 255 characters",
	},
	"phone": {
		"required": "Phone number is required",
		"phone":    "Invalid phone number format",
	},
	"company": {
		"max": "Company name must be less than 100 characters",
	},
	"subject": {
		"required": "Subject is required",
		"min":      "Subject must be at least 5 characters",
		"max":      "Subject must be less than 200 characters",
	},
	"message": {
		"required": "Message is required",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be less than 2000 characters",
	},
	"productId": {
		"required": "Product ID is required",
	},
	"quantity": {
		"wholenum": "Quantity must be an integer",
		"min":      "Quantity must be at least 1",
		"max":      "Quantity cannot exceed 10,000",
	},
	"unitPrice": {
		"gt":  "Unit price must be positive",
		"lte": "Unit price cannot exceed 1,000,000",
	},
	"items": {
		"required": "At least one item is required",
		"min":      "At least one item is required",
		"max":      "Maximum 50 items per order",
	},
	"street": {
		"required": "Street address must be at least 5 characters",
		"min":      "Street address must be at least 5 characters",
	},
	"city": {
		"required": "City must be at least 2 characters",
		"min":      "City must be at least 2 characters",
	},
	"state": {
		"required": "State must be at least 2 characters",
		"min":      "State must be at least 2 characters",
	},
	"postalCode": {
		"required":   "Invalid postal code format",
		"postalcode": "Invalid postal code format",
	},
	"country": {
		"required": "Country must be at least 2 characters",
		"min":      "Country must be at least 2 characters",
	},
	"deliveryDate": {
		"datetime": "Invalid delivery date format",
	},
	"notes": {
		"max": "Notes must be less than 1000 characters",
	},
}

// MessageFor resolves the message for one violation: field-specific copy
// first, generic per-tag fallback otherwise.
func MessageFor(field, tag, param string) string {
	if fieldMessages, ok := customMessages[field]; ok {
		if msg, exists := fieldMessages[tag]; exists {
			return msg
		}
	}
	return defaultMessage(field, tag, param)
}

func defaultMessage(field, tag, param string) string {
	field = strings.ToLower(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a valid datetime", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
