package service

import (
	"context"
	"math"
	"regexp"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/dto"
	apperrors "github.com/Manzzzx/barasakti/internal/errors"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/internal/repository"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/Manzzzx/barasakti/pkg/mailer"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// estimatedDeliveryLead is the placeholder lead time echoed by status lookups.
const estimatedDeliveryLead = 7 * 24 * time.Hour

var orderIDRegex = regexp.MustCompile(constants.OrderIDPattern)

type OrderService struct {
	store    repository.SubmissionStore
	notifier mailer.Notifier
	cache    OrderStatusCache
}

func NewOrderService(store repository.SubmissionStore, notifier mailer.Notifier, cache OrderStatusCache) *OrderService {
	return &OrderService{
		store:    store,
		notifier: notifier,
		cache:    cache,
	}
}

// PriceItems computes per-line totals and the order total. Quantities have
// already passed the whole-number check, so the int coercion is lossless.
func PriceItems(items []dto.OrderItem) ([]model.OrderLine, float64) {
	lines := make([]model.OrderLine, 0, len(items))
	var total float64

	for _, item := range items {
		lineTotal := item.Quantity * item.UnitPrice
		total += lineTotal
		lines = append(lines, model.OrderLine{
			ProductID:      item.ProductID,
			Quantity:       int(math.Trunc(item.Quantity)),
			UnitPrice:      item.UnitPrice,
			TotalPrice:     lineTotal,
			Specifications: item.Specifications,
		})
	}

	return lines, total
}

// CheckTotal enforces the cross-item business invariant, distinct from
// field-level validation: the total must be strictly positive and within
// the order ceiling.
func CheckTotal(total float64) error {
	if total <= 0 {
		return apperrors.ErrInvalidOrderTotal
	}
	if total > constants.MaxOrderTotal {
		return apperrors.ErrOrderTotalExceeded
	}
	return nil
}

// Submit commits a validated, normalized order request.
func (s *OrderService) Submit(ctx context.Context, req *dto.OrderRequest, clientIP, userAgent string) (*dto.OrderResponse, error) {
	lines, total := PriceItems(req.Items)
	if err := CheckTotal(total); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:              NewOrderID(),
		CustomerName:    req.CustomerInfo.Name,
		CustomerEmail:   req.CustomerInfo.Email,
		CustomerPhone:   req.CustomerInfo.Phone,
		CustomerCompany: req.CustomerInfo.Company,
		Address: model.Address{
			Street:     req.CustomerInfo.Address.Street,
			City:       req.CustomerInfo.Address.City,
			State:      req.CustomerInfo.Address.State,
			PostalCode: req.CustomerInfo.Address.PostalCode,
			Country:    req.CustomerInfo.Address.Country,
		},
		Items:         datatypes.NewJSONType(lines),
		TotalAmount:   total,
		DeliveryDate:  req.DeliveryDate,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		Status:        constants.StatusPending,
		Metadata: datatypes.NewJSONType(model.OrderMetadata{
			IPAddress: clientIP,
			UserAgent: userAgent,
			Source:    constants.SubmissionSource,
		}),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.OrderReceived(ctx, order); err != nil {
			logger.GetLogger().Warn("Order notification failed",
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	return &dto.OrderResponse{
		Success: true,
		Message: constants.MsgOrderAccepted,
		Order: dto.OrderSummary{
			ID:          order.ID,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}

// Status resolves an order-status lookup: id presence and format checks,
// cache probe, then the store.
func (s *OrderService) Status(ctx context.Context, id string) (*dto.OrderStatus, error) {
	if id == "" {
		return nil, apperrors.ErrOrderIDRequired
	}
	if !orderIDRegex.MatchString(id) {
		return nil, apperrors.ErrInvalidOrderID
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, id); ok {
			return cached, nil
		}
	}

	order, err := s.store.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	status := &dto.OrderStatus{
		ID:                order.ID,
		Status:            order.Status,
		CreatedAt:         order.CreatedAt.Format(time.RFC3339),
		EstimatedDelivery: order.CreatedAt.Add(estimatedDeliveryLead).Format(time.RFC3339),
	}

	if s.cache != nil {
		s.cache.Set(ctx, id, status)
	}

	return status, nil
}
