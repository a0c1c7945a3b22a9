package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/studentscope/pkg/domain"
)

// MessageRepository handles message-related database operations
type MessageRepository struct {
	db *sqlx.DB
}

// messageSQL represents a message row for SQL operations
type messageSQL struct {
	MessageID      string    `db:"message_id"`
	ConversationID string    `db:"conversation_id"`
	Role           string    `db:"role"`
	Content        string    `db:"content"`
	Timestamp      time.Time `db:"timestamp"`
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(database *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// AddMessage appends a message to the conversation log. The timestamp is
// taken at insertion time, so append order and timestamp order agree.
// Retries on SQLite lock contention since this is the hot write path.
func (r *MessageRepository) AddMessage(ctx context.Context, conversationID string, role domain.Role, content string) (*domain.Message, error) {
	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Timestamp:      time.Now().UTC(),
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		query := `INSERT INTO messages (message_id, conversation_id, role, content, timestamp)
		          VALUES (?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query, msg.ID, msg.ConversationID, string(msg.Role), msg.Content, msg.Timestamp)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("add message: %w", err)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// GetRecentMessages returns the last limit messages in chronological order.
// Rows are fetched newest-first then reversed, so the bound always keeps the
// most recent context.
func (r *MessageRepository) GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]domain.Message, error) {
	var rows []messageSQL
	query := `SELECT * FROM messages WHERE conversation_id = ? ORDER BY timestamp DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, conversationID, limit); err != nil {
		return nil, fmt.Errorf("get recent messages: %w", err)
	}

	msgs := make([]domain.Message, len(rows))
	for i, m := range rows {
		msgs[len(rows)-1-i] = *toDomainMessage(&m) // reverse to chronological
	}
	return msgs, nil
}

// GetMessages returns all conversation messages in chronological order
func (r *MessageRepository) GetMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var rows []messageSQL
	query := `SELECT * FROM messages WHERE conversation_id = ? ORDER BY timestamp`
	if err := r.db.SelectContext(ctx, &rows, query, conversationID); err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return toDomainMessages(rows), nil
}

// GetMessagesByUser returns all messages across the user's conversations in
// chronological order, used for report generation
func (r *MessageRepository) GetMessagesByUser(ctx context.Context, userID string) ([]domain.Message, error) {
	var rows []messageSQL
	query := `
		SELECT m.* FROM messages m
		JOIN conversations c ON m.conversation_id = c.conversation_id
		WHERE c.user_id = ?
		ORDER BY m.timestamp
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get messages by user: %w", err)
	}
	return toDomainMessages(rows), nil
}

func toDomainMessages(rows []messageSQL) []domain.Message {
	msgs := make([]domain.Message, len(rows))
	for i, m := range rows {
		msgs[i] = *toDomainMessage(&m)
	}
	return msgs
}

func toDomainMessage(m *messageSQL) *domain.Message {
	return &domain.Message{
		ID:             m.MessageID,
		ConversationID: m.ConversationID,
		Role:           domain.Role(m.Role),
		Content:        m.Content,
		Timestamp:      m.Timestamp,
	}
}
