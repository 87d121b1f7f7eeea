package service

import (
	"context"
	"time"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/dto"
	"github.com/Manzzzx/barasakti/internal/model"
	"github.com/Manzzzx/barasakti/internal/repository"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/Manzzzx/barasakti/pkg/mailer"
	"go.uber.org/zap"
)

type ContactService struct {
	store    repository.SubmissionStore
	notifier mailer.Notifier
}

func NewContactService(store repository.SubmissionStore, notifier mailer.Notifier) *ContactService {
	return &ContactService{
		store:    store,
		notifier: notifier,
	}
}

// Submit commits a validated, normalized contact request: builds the inquiry
// record, hands it to the store and notifier collaborators, and shapes the
// acceptance payload.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest, clientIP, userAgent string) (*dto.ContactResponse, error) {
	inquiry := &model.Inquiry{
		ID:               NewInquiryID(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Company:          req.Company,
		Subject:          req.Subject,
		Message:          req.Message,
		InquiryType:      req.InquiryType,
		PreferredContact: req.PreferredContact,
		Status:           constants.StatusPending,
		IPAddress:        clientIP,
		UserAgent:        userAgent,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.store.SaveInquiry(ctx, inquiry); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// Notification failure never turns an accepted submission into an error
		if err := s.notifier.InquiryReceived(ctx, inquiry); err != nil {
			logger.GetLogger().Warn("Inquiry notification failed",
				zap.String("inquiry_id", inquiry.ID),
				zap.Error(err),
			)
		}
	}

	return &dto.ContactResponse{
		Success:   true,
		Message:   constants.MsgContactAccepted,
		InquiryID: inquiry.ID,
	}, nil
}
