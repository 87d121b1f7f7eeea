package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Manzzzx/barasakti/internal/errors"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormStore persists submissions to Postgres. Enabled with DB_ENABLED.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SaveInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	start := time.Now()
	result := s.db.WithContext(ctx).Create(inquiry)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to persist inquiry",
			zap.String("inquiry_id", inquiry.ID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error),
		)
		return apperrors.WrapError(apperrors.ErrInternal, result.Error)
	}

	logger.GetLogger().Debug("Inquiry persisted",
		zap.String("inquiry_id", inquiry.ID),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (s *GormStore) SaveOrder(ctx context.Context, order *model.Order) error {
	start := time.Now()
	result := s.db.WithContext(ctx).Create(order)
	if result.Error != nil {
		logger.GetLogger().Error("Failed to persist order",
			zap.String("order_id", order.ID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(result.Error),
		)
		return apperrors.WrapError(apperrors.ErrInternal, result.Error)
	}

	logger.GetLogger().Debug("Order persisted",
		zap.String("order_id", order.ID),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (s *GormStore) FindOrder(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		logger.GetLogger().Error("Failed to look up order",
			zap.String("order_id", id),
			zap.Error(result.Error),
		)
		return nil, apperrors.WrapError(apperrors.ErrInternal, result.Error)
	}
	return &order, nil
}
