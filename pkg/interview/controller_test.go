package interview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/interview"
	"github.com/umputun/studentscope/pkg/interview/mocks"
)

func TestController_StartSession(t *testing.T) {
	users := &mocks.UserStoreMock{
		GetOrCreateByEmailFunc: func(ctx context.Context, email string) (*domain.User, bool, error) {
			return &domain.User{ID: "u1", Email: email, Name: "Priya"}, false, nil
		},
	}
	settings := &mocks.SettingStoreMock{
		QuestionCountFunc: func(ctx context.Context) (int, error) { return 8, nil },
	}
	ctrl := interview.NewController(interview.Params{Users: users, Settings: settings})

	t.Run("existing user", func(t *testing.T) {
		res, err := ctrl.StartSession(context.Background(), "  Student@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "u1", res.UserID)
		assert.Equal(t, "Priya", res.Name)
		assert.False(t, res.IsNewUser)
		assert.Equal(t, 8, res.QuestionCount)

		// email normalized before hitting the store
		calls := users.GetOrCreateByEmailCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "student@example.com", calls[0].Email)
	})

	t.Run("new user", func(t *testing.T) {
		users.GetOrCreateByEmailFunc = func(ctx context.Context, email string) (*domain.User, bool, error) {
			return &domain.User{ID: "u2", Email: email}, true, nil
		}
		res, err := ctrl.StartSession(context.Background(), "new@example.com")
		require.NoError(t, err)
		assert.True(t, res.IsNewUser)
		assert.Empty(t, res.Name)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := ctrl.StartSession(context.Background(), "not-an-email")
		var verr *interview.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("store failure", func(t *testing.T) {
		users.GetOrCreateByEmailFunc = func(ctx context.Context, email string) (*domain.User, bool, error) {
			return nil, false, errors.New("db down")
		}
		_, err := ctrl.StartSession(context.Background(), "student@example.com")
		var perr *interview.PersistenceError
		assert.ErrorAs(t, err, &perr)
	})
}

// turnFixture wires a controller over mocks pre-loaded with one user, one
// conversation and a happy-path completer
type turnFixture struct {
	users         *mocks.UserStoreMock
	conversations *mocks.ConversationStoreMock
	messages      *mocks.MessageStoreMock
	settings      *mocks.SettingStoreMock
	completer     *mocks.CompleterMock
	ctrl          *interview.Controller
}

func newTurnFixture(history []domain.Message) *turnFixture {
	f := &turnFixture{
		users: &mocks.UserStoreMock{
			GetUserFunc: func(ctx context.Context, id string) (*domain.User, error) {
				if id != "u1" {
					return nil, domain.ErrNotFound
				}
				return &domain.User{ID: "u1", Email: "student@example.com"}, nil
			},
			UpdateUserNameFunc: func(ctx context.Context, id, name string) error { return nil },
		},
		conversations: &mocks.ConversationStoreMock{
			CreateConversationFunc: func(ctx context.Context, userID string) (*domain.Conversation, error) {
				return &domain.Conversation{ID: "c-new", UserID: userID}, nil
			},
			GetConversationFunc: func(ctx context.Context, id string) (*domain.Conversation, error) {
				if id != "c1" {
					return nil, domain.ErrNotFound
				}
				return &domain.Conversation{ID: "c1", UserID: "u1"}, nil
			},
		},
		messages: &mocks.MessageStoreMock{
			AddMessageFunc: func(ctx context.Context, conversationID string, role domain.Role, content string) (*domain.Message, error) {
				return &domain.Message{ID: "m-" + string(role), ConversationID: conversationID,
					Role: role, Content: content, Timestamp: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)}, nil
			},
			GetRecentMessagesFunc: func(ctx context.Context, conversationID string, limit int) ([]domain.Message, error) {
				return history, nil
			},
		},
		settings: &mocks.SettingStoreMock{
			QuestionCountFunc: func(ctx context.Context) (int, error) { return 8, nil },
		},
		completer: &mocks.CompleterMock{
			RespondFunc: func(ctx context.Context, history []domain.Message, userMessage string, progress interview.Progress) (string, error) {
				return "tell me more", nil
			},
		},
	}
	f.ctrl = interview.NewController(interview.Params{
		Users:         f.users,
		Conversations: f.conversations,
		Messages:      f.messages,
		Settings:      f.settings,
		Completer:     f.completer,
		HistoryLimit:  20,
	})
	return f
}

func TestController_SubmitTurn(t *testing.T) {
	t.Run("first turn creates conversation", func(t *testing.T) {
		f := newTurnFixture(nil)
		res, err := f.ctrl.SubmitTurn(context.Background(), "u1", "hello", "")
		require.NoError(t, err)
		assert.Equal(t, "tell me more", res.Response)
		assert.Equal(t, "c-new", res.ConversationID)
		assert.Equal(t, 1, res.Progress.Current)
		assert.Equal(t, 7, res.Progress.Remaining)
		assert.Equal(t, interview.PhaseInProgress, res.Progress.Phase)
		assert.Len(t, f.conversations.CreateConversationCalls(), 1)
	})

	t.Run("existing conversation reused", func(t *testing.T) {
		f := newTurnFixture(nil)
		res, err := f.ctrl.SubmitTurn(context.Background(), "u1", "hello", "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", res.ConversationID)
		assert.Empty(t, f.conversations.CreateConversationCalls())
	})

	t.Run("final question concludes", func(t *testing.T) {
		// seven prior user messages plus this one exhausts a budget of eight
		history := make([]domain.Message, 0, 14)
		for i := 0; i < 7; i++ {
			history = append(history,
				domain.Message{Role: domain.RoleUser, Content: "answer"},
				domain.Message{Role: domain.RoleAssistant, Content: "question"})
		}
		f := newTurnFixture(history)
		res, err := f.ctrl.SubmitTurn(context.Background(), "u1", "last answer", "c1")
		require.NoError(t, err)
		assert.Equal(t, 8, res.Progress.Current)
		assert.Equal(t, 0, res.Progress.Remaining)
		assert.Equal(t, interview.PhaseConclude, res.Progress.Phase)

		// the completer saw the same progress the caller got back
		calls := f.completer.RespondCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, res.Progress, calls[0].Progress)
	})

	t.Run("history excludes current message", func(t *testing.T) {
		f := newTurnFixture([]domain.Message{
			{Role: domain.RoleUser, Content: "prior"},
			{Role: domain.RoleAssistant, Content: "reply"},
		})
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "current", "c1")
		require.NoError(t, err)

		calls := f.completer.RespondCalls()
		require.Len(t, calls, 1)
		require.Len(t, calls[0].History, 2)
		assert.Equal(t, "prior", calls[0].History[0].Content)
		assert.Equal(t, "current", calls[0].UserMessage)
	})

	t.Run("persists user then assistant", func(t *testing.T) {
		f := newTurnFixture(nil)
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "hello", "c1")
		require.NoError(t, err)

		calls := f.messages.AddMessageCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, domain.RoleUser, calls[0].Role)
		assert.Equal(t, "hello", calls[0].Content)
		assert.Equal(t, domain.RoleAssistant, calls[1].Role)
		assert.Equal(t, "tell me more", calls[1].Content)
	})

	t.Run("completer failure persists nothing", func(t *testing.T) {
		f := newTurnFixture(nil)
		f.completer.RespondFunc = func(ctx context.Context, history []domain.Message, userMessage string, progress interview.Progress) (string, error) {
			return "", errors.New("upstream timeout")
		}
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "hello", "c1")
		var uerr *interview.UpstreamError
		require.ErrorAs(t, err, &uerr)
		assert.Empty(t, f.messages.AddMessageCalls())
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newTurnFixture(nil)
		_, err := f.ctrl.SubmitTurn(context.Background(), "ghost", "hello", "")
		var nerr *interview.NotFoundError
		assert.ErrorAs(t, err, &nerr)
	})

	t.Run("unknown conversation", func(t *testing.T) {
		f := newTurnFixture(nil)
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "hello", "missing")
		var nerr *interview.NotFoundError
		assert.ErrorAs(t, err, &nerr)
	})

	t.Run("foreign conversation rejected", func(t *testing.T) {
		f := newTurnFixture(nil)
		f.conversations.GetConversationFunc = func(ctx context.Context, id string) (*domain.Conversation, error) {
			return &domain.Conversation{ID: id, UserID: "someone-else"}, nil
		}
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "hello", "c1")
		var aerr *interview.AuthorizationError
		assert.ErrorAs(t, err, &aerr)
		assert.Empty(t, f.completer.RespondCalls())
	})

	t.Run("empty message rejected", func(t *testing.T) {
		f := newTurnFixture(nil)
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "   ", "")
		var verr *interview.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("markup stripped from message", func(t *testing.T) {
		f := newTurnFixture(nil)
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "<script>alert(1)</script>I like <b>math</b>", "c1")
		require.NoError(t, err)
		calls := f.messages.AddMessageCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, "I like math", calls[0].Content)
	})
}

func TestController_SubmitTurn_NameCapture(t *testing.T) {
	t.Run("captures introduction on early turn", func(t *testing.T) {
		f := newTurnFixture(nil)
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "Hi, I'm Aatif", "c1")
		require.NoError(t, err)

		calls := f.users.UpdateUserNameCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "u1", calls[0].ID)
		assert.Equal(t, "Aatif", calls[0].Name)
	})

	t.Run("skips once name is known", func(t *testing.T) {
		f := newTurnFixture(nil)
		f.users.GetUserFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: "u1", Name: "Aatif"}, nil
		}
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "I'm Somebody", "c1")
		require.NoError(t, err)
		assert.Empty(t, f.users.UpdateUserNameCalls())
	})

	t.Run("skips past the early turns", func(t *testing.T) {
		history := make([]domain.Message, 0, 6)
		for i := 0; i < 3; i++ {
			history = append(history,
				domain.Message{Role: domain.RoleUser, Content: "answer"},
				domain.Message{Role: domain.RoleAssistant, Content: "question"})
		}
		f := newTurnFixture(history)
		_, err := f.ctrl.SubmitTurn(context.Background(), "u1", "call me Maria", "c1")
		require.NoError(t, err)
		assert.Empty(t, f.users.UpdateUserNameCalls())
	})

	t.Run("update failure does not fail the turn", func(t *testing.T) {
		f := newTurnFixture(nil)
		f.users.UpdateUserNameFunc = func(ctx context.Context, id, name string) error {
			return errors.New("locked")
		}
		res, err := f.ctrl.SubmitTurn(context.Background(), "u1", "I'm Aatif", "c1")
		require.NoError(t, err)
		assert.Equal(t, "tell me more", res.Response)
	})
}

func TestController_History(t *testing.T) {
	conversations := &mocks.ConversationStoreMock{
		GetConversationFunc: func(ctx context.Context, id string) (*domain.Conversation, error) {
			if id != "c1" {
				return nil, domain.ErrNotFound
			}
			return &domain.Conversation{ID: "c1", UserID: "u1"}, nil
		},
	}
	messages := &mocks.MessageStoreMock{
		GetMessagesFunc: func(ctx context.Context, conversationID string) ([]domain.Message, error) {
			return []domain.Message{
				{Role: domain.RoleUser, Content: "hello"},
				{Role: domain.RoleAssistant, Content: "hi there"},
			}, nil
		},
	}
	ctrl := interview.NewController(interview.Params{Conversations: conversations, Messages: messages})

	t.Run("found", func(t *testing.T) {
		conv, msgs, err := ctrl.History(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", conv.ID)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hello", msgs[0].Content)
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := ctrl.History(context.Background(), "nope")
		var nerr *interview.NotFoundError
		assert.ErrorAs(t, err, &nerr)
	})

	t.Run("empty id", func(t *testing.T) {
		_, _, err := ctrl.History(context.Background(), "")
		var verr *interview.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestController_EndConversation(t *testing.T) {
	conversations := &mocks.ConversationStoreMock{
		EndConversationFunc: func(ctx context.Context, id string) error {
			if id != "c1" {
				return domain.ErrNotFound
			}
			return nil
		},
	}
	ctrl := interview.NewController(interview.Params{Conversations: conversations})

	assert.NoError(t, ctrl.EndConversation(context.Background(), "c1"))

	var nerr *interview.NotFoundError
	assert.ErrorAs(t, ctrl.EndConversation(context.Background(), "nope"), &nerr)
}
