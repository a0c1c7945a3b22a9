package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/studentscope/pkg/domain"
)

// ConversationRepository handles conversation-related database operations
type ConversationRepository struct {
	db *sqlx.DB
}

// conversationSQL represents a conversation row for SQL operations
type conversationSQL struct {
	ConversationID string     `db:"conversation_id"`
	UserID         string     `db:"user_id"`
	StartedAt      time.Time  `db:"started_at"`
	EndedAt        *time.Time `db:"ended_at"`
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(database *sqlx.DB) *ConversationRepository {
	return &ConversationRepository{db: database}
}

// CreateConversation starts a new conversation for the user and returns it
func (r *ConversationRepository) CreateConversation(ctx context.Context, userID string) (*domain.Conversation, error) {
	conv := &domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: time.Now().UTC(),
	}

	query := `INSERT INTO conversations (conversation_id, user_id, started_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, conv.ID, conv.UserID, conv.StartedAt); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

// GetConversation retrieves a conversation by id
func (r *ConversationRepository) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	var c conversationSQL
	err := r.db.GetContext(ctx, &c, "SELECT * FROM conversations WHERE conversation_id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return toDomainConversation(&c), nil
}

// GetConversationsByUser returns the user's conversations, most recent first
func (r *ConversationRepository) GetConversationsByUser(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	var rows []conversationSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM conversations WHERE user_id = ? ORDER BY started_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("get conversations by user: %w", err)
	}

	convs := make([]*domain.Conversation, len(rows))
	for i, c := range rows {
		convs[i] = toDomainConversation(&c)
	}
	return convs, nil
}

// EndConversation sets the end timestamp. Last writer wins on repeated calls.
func (r *ConversationRepository) EndConversation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE conversations SET ended_at = ? WHERE conversation_id = ?", time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("end conversation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("end conversation rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toDomainConversation(c *conversationSQL) *domain.Conversation {
	return &domain.Conversation{
		ID:        c.ConversationID,
		UserID:    c.UserID,
		StartedAt: c.StartedAt,
		EndedAt:   c.EndedAt,
	}
}
