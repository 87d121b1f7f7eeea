package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/dto"
	apperrors "github.com/Manzzzx/barasakti/internal/errors"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/internal/repository"
)

// stubStore records saved submissions and serves a canned order lookup.
type stubStore struct {
	inquiries []*model.Inquiry
	orders    []*model.Order
	found     *model.Order
	findErr   error
}

func (s *stubStore) SaveInquiry(_ context.Context, inquiry *model.Inquiry) error {
	s.inquiries = append(s.inquiries, inquiry)
	return nil
}

func (s *stubStore) SaveOrder(_ context.Context, order *model.Order) error {
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubStore) FindOrder(_ context.Context, id string) (*model.Order, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.found, nil
}

func testOrderRequest() *dto.OrderRequest {
	return &dto.OrderRequest{
		CustomerInfo: dto.CustomerInfo{
			Name:  "Budi Santoso",
			Email: "budi@example.com",
			Phone: "+62 812-3456-7890",
			Address: dto.Address{
				Street:     "Jl. Raya Brebes No. 12",
				City:       "Brebes",
				State:      "Jawa Tengah",
				PostalCode: "52212",
				Country:    "Indonesia",
			},
		},
		Items: []dto.OrderItem{
			{ProductID: "BRIQ-001", Quantity: 10, UnitPrice: 25000},
			{ProductID: "BRIQ-002", Quantity: 2, UnitPrice: 40000},
		},
		PaymentMethod: "bank_transfer",
	}
}

func TestPriceItems(t *testing.T) {
	lines, total := PriceItems(testOrderRequest().Items)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].TotalPrice != 250000 {
		t.Errorf("Expected line total 250000, got %v", lines[0].TotalPrice)
	}
	if lines[0].Quantity != 10 {
		t.Errorf("Expected quantity 10, got %d", lines[0].Quantity)
	}
	if total != 330000 {
		t.Errorf("Expected order total 330000, got %v", total)
	}
}

func TestCheckTotal(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		expected error
	}{
		{
			name:     "Valid total",
			total:    330000,
			expected: nil,
		},
		{
			name:     "Zero total",
			total:    0,
			expected: apperrors.ErrInvalidOrderTotal,
		},
		{
			name:     "Negative total",
			total:    -100,
			expected: apperrors.ErrInvalidOrderTotal,
		},
		{
			name:     "At the ceiling",
			total:    10000000,
			expected: nil,
		},
		{
			name:     "Over the ceiling",
			total:    10000001,
			expected: apperrors.ErrOrderTotalExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTotal(tt.total)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestOrderSubmit(t *testing.T) {
	store := &stubStore{}
	svc := NewOrderService(store, nil, nil)

	res, err := svc.Submit(context.Background(), testOrderRequest(), "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !res.Success {
		t.Error("Expected success response")
	}
	if res.Message != constants.MsgOrderAccepted {
		t.Errorf("Expected message %q, got %q", constants.MsgOrderAccepted, res.Message)
	}
	if res.Order.TotalAmount != 330000 {
		t.Errorf("Expected total 330000, got %v", res.Order.TotalAmount)
	}
	if res.Order.Status != constants.StatusPending {
		t.Errorf("Expected status %s, got %s", constants.StatusPending, res.Order.Status)
	}

	if len(store.orders) != 1 {
		t.Fatalf("Expected 1 saved order, got %d", len(store.orders))
	}
	saved := store.orders[0]
	if saved.ID != res.Order.ID {
		t.Errorf("Expected saved id %s to match response id %s", saved.ID, res.Order.ID)
	}
	meta := saved.Metadata.Data()
	if meta.IPAddress != "10.0.0.1" || meta.UserAgent != "test-agent" || meta.Source != constants.SubmissionSource {
		t.Errorf("Unexpected metadata: %+v", meta)
	}
}

func TestOrderSubmitRejectsExcessiveTotal(t *testing.T) {
	store := &stubStore{}
	svc := NewOrderService(store, nil, nil)

	req := testOrderRequest()
	req.Items = []dto.OrderItem{
		{ProductID: "BRIQ-001", Quantity: 10000, UnitPrice: 1000000},
	}

	_, err := svc.Submit(context.Background(), req, "10.0.0.1", "test-agent")
	if !errors.Is(err, apperrors.ErrOrderTotalExceeded) {
		t.Errorf("Expected ErrOrderTotalExceeded, got %v", err)
	}
	if len(store.orders) != 0 {
		t.Errorf("Expected no saved orders, got %d", len(store.orders))
	}
}

func TestOrderStatus(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStore{
		found: &model.Order{
			ID:        "ORD-1700000000000-K3J9X2M1Q",
			Status:    constants.StatusProcessing,
			CreatedAt: createdAt,
		},
	}
	svc := NewOrderService(store, nil, nil)

	tests := []struct {
		name     string
		id       string
		expected error
	}{
		{
			name:     "Missing id",
			id:       "",
			expected: apperrors.ErrOrderIDRequired,
		},
		{
			name:     "Malformed id",
			id:       "12345",
			expected: apperrors.ErrInvalidOrderID,
		},
		{
			name:     "Lowercase token rejected",
			id:       "ORD-1700000000000-k3j9x2m1q",
			expected: apperrors.ErrInvalidOrderID,
		},
		{
			name: "Well formed id",
			id:   "ORD-1700000000000-K3J9X2M1Q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := svc.Status(context.Background(), tt.id)
			if tt.expected != nil {
				if !errors.Is(err, tt.expected) {
					t.Errorf("Expected %v, got %v", tt.expected, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if status.ID != tt.id {
				t.Errorf("Expected id %s, got %s", tt.id, status.ID)
			}
			if status.Status != constants.StatusProcessing {
				t.Errorf("Expected status %s, got %s", constants.StatusProcessing, status.Status)
			}
			wantDelivery := createdAt.Add(estimatedDeliveryLead).Format(time.RFC3339)
			if status.EstimatedDelivery != wantDelivery {
				t.Errorf("Expected estimated delivery %s, got %s", wantDelivery, status.EstimatedDelivery)
			}
		})
	}
}

func TestOrderStatusNotFound(t *testing.T) {
	store := &stubStore{findErr: apperrors.ErrOrderNotFound}
	svc := NewOrderService(store, nil, nil)

	_, err := svc.Status(context.Background(), "ORD-1700000000000-K3J9X2M1Q")
	if !errors.Is(err, apperrors.ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderStatusUsesCache(t *testing.T) {
	store := &stubStore{findErr: apperrors.ErrOrderNotFound}
	cache := NewMemoryStatusCache(time.Minute)
	svc := NewOrderService(store, nil, cache)

	id := "ORD-1700000000000-K3J9X2M1Q"
	cached := &dto.OrderStatus{
		ID:        id,
		Status:    constants.StatusProcessing,
		CreatedAt: "2025-06-01T12:00:00Z",
	}
	cache.Set(context.Background(), id, cached)

	status, err := svc.Status(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected cache hit to bypass the store, got %v", err)
	}
	if status.Status != constants.StatusProcessing {
		t.Errorf("Expected cached status, got %+v", status)
	}
}

var _ repository.SubmissionStore = (*stubStore)(nil)
