package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/dberrors"
)

// IConversationRepository defines the interface for chat transcript storage
type IConversationRepository interface {
	AppendConversation(ctx context.Context, conv *models.Conversation) error
	GetConversationsByUser(ctx context.Context, userID int64) ([]*models.Conversation, error)
	GetRecentConversations(ctx context.Context, userID int64, limit int) ([]*models.Conversation, error)
}

// ConversationRepository handles the append-only 'conversations' table
type ConversationRepository struct {
	db *pgxpool.Pool
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// AppendConversation persists one completed (message, response) turn.
// Turns are only written after the provider answered, so the transcript
// never contains half-finished entries.
func (r *ConversationRepository) AppendConversation(ctx context.Context, conv *models.Conversation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO conversations (user_id, message, response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		conv.UserID, conv.Message, conv.Response).Scan(&conv.ID, &conv.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error appending conversation: %w", err)
	}

	return nil
}

// GetConversationsByUser returns the user's full transcript oldest-first
func (r *ConversationRepository) GetConversationsByUser(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, response, created_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at, id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		c := &models.Conversation{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Message, &c.Response, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		conversations = append(conversations, c)
	}

	return conversations, rows.Err()
}

// GetRecentConversations returns the last `limit` turns, oldest-first.
func (r *ConversationRepository) GetRecentConversations(ctx context.Context, userID int64, limit int) ([]*models.Conversation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, response, created_at
		FROM (
			SELECT id, user_id, message, response, created_at
			FROM conversations
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at, id`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		c := &models.Conversation{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Message, &c.Response, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		conversations = append(conversations, c)
	}

	return conversations, rows.Err()
}
