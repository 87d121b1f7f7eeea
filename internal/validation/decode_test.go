package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Manzzzx/barasakti/internal/dto"
)

func TestDecodeViolation(t *testing.T) {
	tests := []struct {
		name    string
		target  any
		payload string
		field   string
		message string
	}{
		{
			name:    "Numeric name",
			target:  &dto.ContactRequest{},
			payload: `{"name": 123}`,
			field:   "name",
			message: "name must be a string",
		},
		{
			name:    "Quoted quantity",
			target:  &dto.OrderRequest{},
			payload: `{"items": [{"productId": "BRIQ-001", "quantity": "5"}]}`,
			field:   "items.quantity",
			message: "quantity must be a number",
		},
		{
			name:    "Scalar customer info",
			target:  &dto.OrderRequest{},
			payload: `{"customerInfo": "Budi"}`,
			field:   "customerInfo",
			message: "customerInfo must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.NewDecoder(strings.NewReader(tt.payload)).Decode(tt.target)
			if err == nil {
				t.Fatal("Expected a decode error")
			}

			v, ok := DecodeViolation(err)
			if !ok {
				t.Fatalf("Expected a violation for %v", err)
			}
			if v.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, v.Field)
			}
			if v.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, v.Message)
			}
		})
	}
}

func TestDecodeViolationIgnoresSyntaxErrors(t *testing.T) {
	var req dto.ContactRequest
	err := json.NewDecoder(strings.NewReader(`{"name": "Budi`)).Decode(&req)
	if err == nil {
		t.Fatal("Expected a decode error")
	}

	if _, ok := DecodeViolation(err); ok {
		t.Error("Expected truncated JSON to stay a parse failure")
	}
}
