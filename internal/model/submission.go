package model

import (
	"time"

	"gorm.io/datatypes"
)

// Inquiry is one accepted contact submission. The record only lives for the
// handler invocation unless the optional database store is enabled.
type Inquiry struct {
	ID               string    `gorm:"primaryKey;size:40" json:"id"`
	Name             string    `gorm:"size:100" json:"name"`
	Email            string    `gorm:"size:255;index" json:"email"`
	Phone            string    `gorm:"size:20" json:"phone,omitempty"`
	Company          string    `gorm:"size:100" json:"company,omitempty"`
	Subject          string    `gorm:"size:200" json:"subject"`
	Message          string    `gorm:"size:2000" json:"message"`
	InquiryType      string    `gorm:"size:20" json:"inquiryType"`
	PreferredContact string    `gorm:"size:20" json:"preferredContact"`
	Status           string    `gorm:"size:20" json:"status"`
	IPAddress        string    `gorm:"size:45" json:"ipAddress,omitempty"`
	UserAgent        string    `gorm:"size:512" json:"userAgent,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// OrderLine is one priced order item as committed, quantity already coerced
// to a whole number and the line total computed.
type OrderLine struct {
	ProductID      string            `json:"productId"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unitPrice"`
	TotalPrice     float64           `json:"totalPrice"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Address is the committed delivery address.
type Address struct {
	Street     string `gorm:"size:255" json:"street"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	PostalCode string `gorm:"size:10" json:"postalCode"`
	Country    string `gorm:"size:100" json:"country"`
}

// OrderMetadata captures where the submission came from.
type OrderMetadata struct {
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Source    string `json:"source"`
}

// Order is one accepted order submission.
type Order struct {
	ID              string                                `gorm:"primaryKey;size:40" json:"id"`
	CustomerName    string                                `gorm:"size:100" json:"customerName"`
	CustomerEmail   string                                `gorm:"size:255;index" json:"customerEmail"`
	CustomerPhone   string                                `gorm:"size:20" json:"customerPhone"`
	CustomerCompany string                                `gorm:"size:100" json:"customerCompany,omitempty"`
	Address         Address                               `gorm:"embedded;embeddedPrefix:addr_" json:"address"`
	Items           datatypes.JSONType[[]OrderLine]       `json:"items"`
	TotalAmount     float64                               `json:"totalAmount"`
	DeliveryDate    string                                `gorm:"size:40" json:"deliveryDate,omitempty"`
	Notes           string                                `gorm:"size:1000" json:"notes,omitempty"`
	PaymentMethod   string                                `gorm:"size:20" json:"paymentMethod"`
	Status          string                                `gorm:"size:20" json:"status"`
	Metadata        datatypes.JSONType[OrderMetadata]     `json:"metadata"`
	CreatedAt       time.Time                             `json:"createdAt"`
	UpdatedAt       time.Time                             `json:"updatedAt"`
}
