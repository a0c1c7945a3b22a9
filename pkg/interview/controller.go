package interview

import (
	"context"
	"errors"
	"html"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/studentscope/pkg/domain"
)

//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/conversation_store.go -pkg mocks -skip-ensure -fmt goimports . ConversationStore
//go:generate moq -out mocks/message_store.go -pkg mocks -skip-ensure -fmt goimports . MessageStore
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/completer.go -pkg mocks -skip-ensure -fmt goimports . Completer

// UserStore provides user persistence
type UserStore interface {
	GetOrCreateByEmail(ctx context.Context, email string) (*domain.User, bool, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUserName(ctx context.Context, id, name string) error
}

// ConversationStore provides conversation persistence
type ConversationStore interface {
	CreateConversation(ctx context.Context, userID string) (*domain.Conversation, error)
	GetConversation(ctx context.Context, id string) (*domain.Conversation, error)
	EndConversation(ctx context.Context, id string) error
}

// MessageStore provides the append-only message log
type MessageStore interface {
	AddMessage(ctx context.Context, conversationID string, role domain.Role, content string) (*domain.Message, error)
	GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]domain.Message, error)
	GetMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
}

// SettingStore provides runtime-tunable settings
type SettingStore interface {
	QuestionCount(ctx context.Context) (int, error)
}

// Completer produces the assistant reply for one turn
type Completer interface {
	Respond(ctx context.Context, history []domain.Message, userMessage string, progress Progress) (string, error)
}

// Controller orchestrates one interview turn: bounded history, progress,
// completion call, persistence and opportunistic name capture.
type Controller struct {
	users         UserStore
	conversations ConversationStore
	messages      MessageStore
	settings      SettingStore
	completer     Completer
	historyLimit  int
	sanitizer     *bluemonday.Policy
}

// Params holds controller dependencies
type Params struct {
	Users         UserStore
	Conversations ConversationStore
	Messages      MessageStore
	Settings      SettingStore
	Completer     Completer
	HistoryLimit  int
}

// name extraction stops once this many user messages have been answered
const nameExtractionTurnLimit = 3

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NewController creates a controller with the given collaborators
func NewController(p Params) *Controller {
	if p.HistoryLimit < 1 {
		p.HistoryLimit = 20
	}
	return &Controller{
		users:         p.Users,
		conversations: p.Conversations,
		messages:      p.Messages,
		settings:      p.Settings,
		completer:     p.Completer,
		historyLimit:  p.HistoryLimit,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// StartResult is returned by StartSession
type StartResult struct {
	UserID        string `json:"userId"`
	Name          string `json:"name,omitempty"`
	IsNewUser     bool   `json:"isNewUser"`
	QuestionCount int    `json:"questionCount"`
}

// TurnResult is returned by SubmitTurn. The transport layer owns the wire
// representation.
type TurnResult struct {
	Response       string
	ConversationID string
	Timestamp      time.Time
	Progress       Progress
}

// StartSession resolves or creates the user for the given email and returns
// session bootstrap data
func (c *Controller) StartSession(ctx context.Context, email string) (*StartResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return nil, &ValidationError{Msg: "valid email is required"}
	}

	user, created, err := c.users.GetOrCreateByEmail(ctx, email)
	if err != nil {
		return nil, &PersistenceError{Op: "get or create user", Err: err}
	}

	budget, err := c.settings.QuestionCount(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "read question count", Err: err}
	}

	return &StartResult{
		UserID:        user.ID,
		Name:          user.Name,
		IsNewUser:     created,
		QuestionCount: budget,
	}, nil
}

// SubmitTurn processes a single interview turn. Concurrent calls on the same
// conversation are not serialized: their history reads may interleave and
// produce out-of-order context. This is an accepted limitation.
func (c *Controller) SubmitTurn(ctx context.Context, userID, message, conversationID string) (*TurnResult, error) {
	message = c.cleanMessage(message)
	if userID == "" || message == "" {
		return nil, &ValidationError{Msg: "userId and message are required"}
	}

	user, err := c.users.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &NotFoundError{Entity: "user"}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get user", Err: err}
	}

	conv, err := c.resolveConversation(ctx, user.ID, conversationID)
	if err != nil {
		return nil, err
	}

	// bounded history is read before the new message is appended, so the
	// model never sees the message it is about to answer twice
	history, err := c.messages.GetRecentMessages(ctx, conv.ID, c.historyLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "get history", Err: err}
	}

	userMessageCount := countRole(history, domain.RoleUser) + 1

	budget, err := c.settings.QuestionCount(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "read question count", Err: err}
	}
	progress := ComputeProgress(budget, userMessageCount)

	// sole long-latency call of the turn; nothing is persisted if it fails
	response, err := c.completer.Respond(ctx, history, message, progress)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	if _, err := c.messages.AddMessage(ctx, conv.ID, domain.RoleUser, message); err != nil {
		return nil, &PersistenceError{Op: "store user message", Err: err}
	}
	// the user message is durable at this point; an assistant-write failure
	// leaves an unanswered user message behind, reported rather than hidden
	assistantMsg, err := c.messages.AddMessage(ctx, conv.ID, domain.RoleAssistant, response)
	if err != nil {
		return nil, &PersistenceError{Op: "store assistant message", Err: err}
	}

	c.maybeCaptureUserName(ctx, user, message, userMessageCount)

	return &TurnResult{
		Response:       response,
		ConversationID: conv.ID,
		Timestamp:      assistantMsg.Timestamp,
		Progress:       progress,
	}, nil
}

// History returns the full message log of a conversation
func (c *Controller) History(ctx context.Context, conversationID string) (*domain.Conversation, []domain.Message, error) {
	if conversationID == "" {
		return nil, nil, &ValidationError{Msg: "conversationId is required"}
	}

	conv, err := c.conversations.GetConversation(ctx, conversationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, &NotFoundError{Entity: "conversation"}
	}
	if err != nil {
		return nil, nil, &PersistenceError{Op: "get conversation", Err: err}
	}

	msgs, err := c.messages.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, nil, &PersistenceError{Op: "get messages", Err: err}
	}
	return conv, msgs, nil
}

// EndConversation marks a conversation as explicitly ended. Unrelated to the
// question-count driven conclusion, which stays derived.
func (c *Controller) EndConversation(ctx context.Context, conversationID string) error {
	err := c.conversations.EndConversation(ctx, conversationID)
	if errors.Is(err, domain.ErrNotFound) {
		return &NotFoundError{Entity: "conversation"}
	}
	if err != nil {
		return &PersistenceError{Op: "end conversation", Err: err}
	}
	return nil
}

// resolveConversation loads and authorizes an existing conversation or
// creates a fresh one when no id was supplied
func (c *Controller) resolveConversation(ctx context.Context, userID, conversationID string) (*domain.Conversation, error) {
	if conversationID == "" {
		conv, err := c.conversations.CreateConversation(ctx, userID)
		if err != nil {
			return nil, &PersistenceError{Op: "create conversation", Err: err}
		}
		return conv, nil
	}

	conv, err := c.conversations.GetConversation(ctx, conversationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &NotFoundError{Entity: "conversation"}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get conversation", Err: err}
	}
	if conv.UserID != userID {
		return nil, &AuthorizationError{Msg: "conversation does not belong to this user"}
	}
	return conv, nil
}

// maybeCaptureUserName runs opportunistic name extraction during the first
// few turns. Best-effort enrichment: failures are logged and swallowed, and
// an already stored name is never overwritten.
func (c *Controller) maybeCaptureUserName(ctx context.Context, user *domain.User, message string, userMessageCount int) {
	if user.Name != "" || userMessageCount > nameExtractionTurnLimit {
		return
	}

	name := ExtractName(message)
	if name == "" {
		return
	}

	if err := c.users.UpdateUserName(ctx, user.ID, name); err != nil {
		log.Printf("[WARN] failed to store extracted name %q for user %s: %v", name, user.ID, err)
		return
	}
	log.Printf("[DEBUG] captured name %q for user %s", name, user.ID)
}

// cleanMessage strips markup from inbound text and trims whitespace
func (c *Controller) cleanMessage(message string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(message)))
}

func countRole(msgs []domain.Message, role domain.Role) int {
	count := 0
	for _, m := range msgs {
		if m.Role == role {
			count++
		}
	}
	return count
}
