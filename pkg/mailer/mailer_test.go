package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/Manzzzx/barasakti/config"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"gorm.io/datatypes"
)

func init() {
	logger.InitTestLogger()
}

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		FromName:    "Bara Sakti",
		FromAddress: "noreply@example.com",
		SalesInbox:  "sales@example.com",
	}
}

func TestLogMailerInquiry(t *testing.T) {
	m, err := NewLogMailer(testMailConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	inquiry := &model.Inquiry{
		ID:               "INQ-1700000000000-k3j9x2m1q",
		Name:             "Budi Santoso",
		Email:            "budi@example.com",
		Subject:          "Briquette pricing",
		Message:          "Please send me your current price list.",
		InquiryType:      "product",
		PreferredContact: "email",
		CreatedAt:        time.Now().UTC(),
	}

	if err := m.InquiryReceived(context.Background(), inquiry); err != nil {
		t.Errorf("Expected inquiry notification to render, got %v", err)
	}
}

func TestLogMailerOrder(t *testing.T) {
	m, err := NewLogMailer(testMailConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	order := &model.Order{
		ID:            "ORD-1700000000000-K3J9X2M1Q",
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		Items: datatypes.NewJSONType([]model.OrderLine{
			{ProductID: "BRIQ-001", Quantity: 10, UnitPrice: 25000, TotalPrice: 250000},
		}),
		TotalAmount:   250000,
		PaymentMethod: "bank_transfer",
		Status:        "pending",
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.OrderReceived(context.Background(), order); err != nil {
		t.Errorf("Expected order notification to render, got %v", err)
	}
}
