package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/repositories"
	"github.com/campusflow/backend/internal/pkg/apperrors"
)

// MessageService handles account-to-account messages.
type MessageService interface {
	SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error)
	ListMessages(ctx context.Context, accountID int64) ([]*models.Message, error)
}

type messageServiceImpl struct {
	messageRepo repositories.IMessageRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repositories.IMessageRepository, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{messageRepo: messageRepo, logger: logger}
}

// SendMessage stores a message from the authenticated account.
func (s *messageServiceImpl) SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.RecipientID == senderID {
		return nil, apperrors.NewValidationError("cannot send a message to yourself")
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.NewValidationError("subject and body are required")
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	}

	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info().Int64("senderID", senderID).Int64("recipientID", req.RecipientID).Msg("Message sent")
	return message, nil
}

// ListMessages returns the account's inbox and outbox, newest first.
func (s *messageServiceImpl) ListMessages(ctx context.Context, accountID int64) ([]*models.Message, error) {
	return s.messageRepo.ListMessagesForAccount(ctx, accountID)
}
