package dto

import "testing"

func TestContactNormalize(t *testing.T) {
	req := ContactRequest{
		Name:    "  Budi Santoso  ",
		Email:   " Budi@Example.COM ",
		Subject: " Briquette pricing ",
		Message: " Please send me your current price list. ",
	}

	req.Normalize()

	if req.Name != "Budi Santoso" {
		t.Errorf("Expected trimmed name, got %q", req.Name)
	}
	if req.Email != "budi@example.com" {
		t.Errorf("Expected lower-cased email, got %q", req.Email)
	}
	if req.InquiryType != InquiryGeneral {
		t.Errorf("Expected default inquiry type %q, got %q", InquiryGeneral, req.InquiryType)
	}
	if req.PreferredContact != ContactViaEmail {
		t.Errorf("Expected default preferred contact %q, got %q", ContactViaEmail, req.PreferredContact)
	}
}

func TestContactNormalizeKeepsExplicitEnums(t *testing.T) {
	req := ContactRequest{
		InquiryType:      InquiryPartnership,
		PreferredContact: ContactViaWhatsApp,
	}

	req.Normalize()

	if req.InquiryType != InquiryPartnership {
		t.Errorf("Expected inquiry type to survive, got %q", req.InquiryType)
	}
	if req.PreferredContact != ContactViaWhatsApp {
		t.Errorf("Expected preferred contact to survive, got %q", req.PreferredContact)
	}
}
