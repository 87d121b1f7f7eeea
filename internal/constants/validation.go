package constants

// Field Length Limits
const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxCompanyLength = 100
	MinSubjectLength = 5
	MaxSubjectLength = 200
	MinMessageLength = 10
	MaxMessageLength = 2000
	MaxNotesLength   = 1000
	MinOrderItems    = 1
	MaxOrderItems    = 50
	MaxItemQuantity  = 10000
	MaxUnitPrice     = 1000000
)

// Order business rules
const (
	MaxOrderTotal = 10000000 // cross-item ceiling, checked after field validation
)

// Validation Patterns
const (
	PersonNamePattern = `^[a-zA-Z\s]+$`
	PhonePattern      = `^[+]?[0-9\s\-()]{10,20}$`
	PostalCodePattern = `^[0-9]{5}$`
	OrderIDPattern    = `^ORD-\d+-[A-Z0-9]{9}$`
)
