package dto

import "strings"

// Payment method enums
const (
	PaymentBankTransfer   = "bank_transfer"
	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentCredit         = "credit"
)

// Address is the required delivery address inside customerInfo
type Address struct {
	Street     string `json:"street" validate:"required,min=5"`
	City       string `json:"city" validate:"required,min=2"`
	State      string `json:"state" validate:"required,min=2"`
	PostalCode string `json:"postalCode" validate:"required,postalcode"`
	Country    string `json:"country" validate:"required,min=2"`
}

// CustomerInfo identifies the ordering customer
type CustomerInfo struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   string  `json:"phone" validate:"required,phone"`
	Company string  `json:"company,omitempty" validate:"omitempty,max=100"`
	Address Address `json:"address"`
}

// OrderItem is one order line. Quantity is decoded as float64 so a fractional
// value surfaces as a field violation ("must be an integer") instead of a
// JSON decode failure; the wholenum tag enforces integrality.
type OrderItem struct {
	ProductID      string            `json:"productId" validate:"required"`
	Quantity       float64           `json:"quantity" validate:"wholenum,min=1,max=10000"`
	UnitPrice      float64           `json:"unitPrice" validate:"gt=0,lte=1000000"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// OrderRequest is the payload for POST /api/orders
type OrderRequest struct {
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	Items         []OrderItem  `json:"items" validate:"required,min=1,max=50,dive"`
	DeliveryDate  string       `json:"deliveryDate,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes         string       `json:"notes,omitempty" validate:"omitempty,max=1000"`
	PaymentMethod string       `json:"paymentMethod,omitempty" validate:"omitempty,oneof=bank_transfer cash_on_delivery credit"`
}

// Normalize trims customer strings, lower-cases the email and applies the
// payment method default. Item payloads are left untouched.
func (r *OrderRequest) Normalize() {
	r.CustomerInfo.Name = strings.TrimSpace(r.CustomerInfo.Name)
	r.CustomerInfo.Email = strings.ToLower(strings.TrimSpace(r.CustomerInfo.Email))
	r.CustomerInfo.Phone = strings.TrimSpace(r.CustomerInfo.Phone)
	r.CustomerInfo.Company = strings.TrimSpace(r.CustomerInfo.Company)
	r.Notes = strings.TrimSpace(r.Notes)

	if r.PaymentMethod == "" {
		r.PaymentMethod = PaymentBankTransfer
	}
}

// OrderSummary is the echoed order block inside the 201 body
type OrderSummary struct {
	ID          string  `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// OrderResponse is the 201 body for an accepted order
type OrderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   OrderSummary `json:"order"`
}

// OrderStatus is the body of a GET /api/orders?id= lookup
type OrderStatus struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// OrderStatusResponse wraps a successful status lookup
type OrderStatusResponse struct {
	Success bool        `json:"success"`
	Order   OrderStatus `json:"order"`
}
