package repository

import (
	"context"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"go.uber.org/zap"
)

// SubmissionStore is the commit-step collaborator. The default LogStore
// records submissions in the log and discards them; the Gorm-backed store
// persists them when a database is configured.
type SubmissionStore interface {
	SaveInquiry(ctx context.Context, inquiry *model.Inquiry) error
	SaveOrder(ctx context.Context, order *model.Order) error
	FindOrder(ctx context.Context, id string) (*model.Order, error)
}

// LogStore is the no-persistence store: saves log the accepted record and
// drop it, and order lookups answer with placeholder data.
type LogStore struct{}

func NewLogStore() *LogStore {
	return &LogStore{}
}

func (s *LogStore) SaveInquiry(_ context.Context, inquiry *model.Inquiry) error {
	logger.GetLogger().Info("Contact inquiry received",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("email", inquiry.Email),
		zap.String("subject", inquiry.Subject),
		zap.Time("created_at", inquiry.CreatedAt),
	)
	return nil
}

func (s *LogStore) SaveOrder(_ context.Context, order *model.Order) error {
	logger.GetLogger().Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_email", order.CustomerEmail),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int("item_count", len(order.Items.Data())),
		zap.Time("created_at", order.CreatedAt),
	)
	return nil
}

// FindOrder fabricates a status record. Without persistence there is nothing
// to look up, so any well-formed id resolves to a processing order.
func (s *LogStore) FindOrder(_ context.Context, id string) (*model.Order, error) {
	now := time.Now().UTC()
	return &model.Order{
		ID:        id,
		Status:    constants.StatusProcessing,
		CreatedAt: now,
	}, nil
}
