package domain

import "time"

// Conversation is a single bounded interview session owned by one user.
// EndedAt is set only by the explicit end action, never inferred from the
// question count.
type Conversation struct {
	ID        string
	UserID    string
	StartedAt time.Time
	EndedAt   *time.Time
}

// Role identifies the author of a message
type Role string

// message roles, match the values stored in the messages table
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one turn contribution within a conversation
type Message struct {
	ID             string
	ConversationID string
	Role           Role
	Content        string
	Timestamp      time.Time
}
