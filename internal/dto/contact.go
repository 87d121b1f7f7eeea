package dto

import "strings"

// Inquiry type and preferred contact channel enums
const (
	InquiryGeneral     = "general"
	InquiryProduct     = "product"
	InquiryPartnership = "partnership"
	InquirySupport     = "support"

	ContactViaEmail    = "email"
	ContactViaPhone    = "phone"
	ContactViaWhatsApp = "whatsapp"
)

// ContactRequest is the payload for POST /api/contact
type ContactRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100,personname"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Phone            string `json:"phone,omitempty" validate:"omitempty,phone"`
	Company          string `json:"company,omitempty" validate:"omitempty,max=100"`
	Subject          string `json:"subject" validate:"required,min=5,max=200"`
	Message          string `json:"message" validate:"required,min=10,max=2000"`
	InquiryType      string `json:"inquiryType,omitempty" validate:"omitempty,oneof=general product partnership support"`
	PreferredContact string `json:"preferredContact,omitempty" validate:"omitempty,oneof=email phone whatsapp"`
}

// Normalize trims surrounding whitespace, lower-cases the email and applies
// enum defaults. Called on the decoded payload; a payload that later fails
// validation is discarded, so no partially-normalized value ever escapes.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)

	if r.InquiryType == "" {
		r.InquiryType = InquiryGeneral
	}
	if r.PreferredContact == "" {
		r.PreferredContact = ContactViaEmail
	}
}

// ContactResponse is the 201 body for an accepted inquiry
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
}
