package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/db"
	"github.com/campusflow/backend/internal/pkg/apperrors"
	"github.com/campusflow/backend/internal/pkg/dberrors"
)

// IMessageRepository defines message database operations.
type IMessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	ListMessagesForAccount(ctx context.Context, accountID int64) ([]*models.Message, error)
}

// MessageRepository handles message database operations.
type MessageRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(database *db.PostgresDB) *MessageRepository {
	return &MessageRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMessage inserts a new message row.
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, recipient_id, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		message.SenderID, message.RecipientID, message.Subject, message.Body).Scan(
		&message.ID, &message.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAccountNotFound
		}
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// ListMessagesForAccount returns messages sent to or by the account,
// newest first.
func (r *MessageRepository) ListMessagesForAccount(ctx context.Context, accountID int64) ([]*models.Message, error) {
	sql, args, err := r.sb.Select("id", "sender_id", "recipient_id", "subject", "body", "created_at").
		From("messages").
		Where(squirrel.Or{
			squirrel.Eq{"sender_id": accountID},
			squirrel.Eq{"recipient_id": accountID},
		}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.Message, 0)
	for rows.Next() {
		message := &models.Message{}
		if err := rows.Scan(&message.ID, &message.SenderID, &message.RecipientID,
			&message.Subject, &message.Body, &message.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}
