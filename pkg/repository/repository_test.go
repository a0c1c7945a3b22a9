package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/studentscope/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repos.Close())
	})
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))

	t.Run("user operations", func(t *testing.T) {
		user, created, err := repos.User.GetOrCreateByEmail(ctx, "student@example.com")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "student@example.com", user.Email)
		assert.Empty(t, user.Name)

		// second call is idempotent
		again, created, err := repos.User.GetOrCreateByEmail(ctx, "student@example.com")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, user.ID, again.ID)

		// name update
		require.NoError(t, repos.User.UpdateUserName(ctx, user.ID, "Aatif"))
		updated, err := repos.User.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Aatif", updated.Name)

		// unknown user
		_, err = repos.User.GetUser(ctx, "no-such-user")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("conversation operations", func(t *testing.T) {
		user, _, err := repos.User.GetOrCreateByEmail(ctx, "conv@example.com")
		require.NoError(t, err)

		conv, err := repos.Conversation.CreateConversation(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, conv.ID)
		assert.Equal(t, user.ID, conv.UserID)
		assert.Nil(t, conv.EndedAt)

		loaded, err := repos.Conversation.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, loaded.ID)

		convs, err := repos.Conversation.GetConversationsByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, convs, 1)

		require.NoError(t, repos.Conversation.EndConversation(ctx, conv.ID))
		ended, err := repos.Conversation.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		require.NotNil(t, ended.EndedAt)

		err = repos.Conversation.EndConversation(ctx, "no-such-conversation")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("message operations", func(t *testing.T) {
		user, _, err := repos.User.GetOrCreateByEmail(ctx, "msg@example.com")
		require.NoError(t, err)
		conv, err := repos.Conversation.CreateConversation(ctx, user.ID)
		require.NoError(t, err)

		userMsg, err := repos.Message.AddMessage(ctx, conv.ID, domain.RoleUser, "hello")
		require.NoError(t, err)
		assistantMsg, err := repos.Message.AddMessage(ctx, conv.ID, domain.RoleAssistant, "hi there")
		require.NoError(t, err)

		// insertion order and timestamp order agree
		assert.False(t, assistantMsg.Timestamp.Before(userMsg.Timestamp))

		msgs, err := repos.Message.GetMessages(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, domain.RoleUser, msgs[0].Role)
		assert.Equal(t, domain.RoleAssistant, msgs[1].Role)

		byUser, err := repos.Message.GetMessagesByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, byUser, 2)
	})
}

func TestMessageRepository_GetRecentMessages(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user, _, err := repos.User.GetOrCreateByEmail(ctx, "recent@example.com")
	require.NoError(t, err)
	conv, err := repos.Conversation.CreateConversation(ctx, user.ID)
	require.NoError(t, err)

	contents := []string{"one", "two", "three", "four", "five"}
	for i, c := range contents {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		_, err := repos.Message.AddMessage(ctx, conv.ID, role, c)
		require.NoError(t, err)
	}

	// bound keeps the newest messages, returned in chronological order
	recent, err := repos.Message.GetRecentMessages(ctx, conv.ID, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "three", recent[0].Content)
	assert.Equal(t, "four", recent[1].Content)
	assert.Equal(t, "five", recent[2].Content)

	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Timestamp.Before(recent[i-1].Timestamp))
	}

	// limit larger than the log returns everything
	all, err := repos.Message.GetRecentMessages(ctx, conv.ID, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// empty conversation
	other, err := repos.Conversation.CreateConversation(ctx, user.ID)
	require.NoError(t, err)
	empty, err := repos.Message.GetRecentMessages(ctx, other.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("get absent key", func(t *testing.T) {
		value, err := repos.Setting.GetSetting(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingInterviewTitle, "Intake Interview"))
		value, err := repos.Setting.GetSetting(ctx, domain.SettingInterviewTitle)
		require.NoError(t, err)
		assert.Equal(t, "Intake Interview", value)

		// upsert overwrites
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingInterviewTitle, "Updated"))
		value, err = repos.Setting.GetSetting(ctx, domain.SettingInterviewTitle)
		require.NoError(t, err)
		assert.Equal(t, "Updated", value)
	})

	t.Run("get all", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingQuestionCount, "12"))
		all, err := repos.Setting.GetAllSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "12", all[domain.SettingQuestionCount])
	})

	t.Run("question count", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingQuestionCount, "12"))
		count, err := repos.Setting.QuestionCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 12, count)

		// malformed falls back to default
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingQuestionCount, "not-a-number"))
		count, err = repos.Setting.QuestionCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultQuestionCount, count)

		// non-positive clamped to 1
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingQuestionCount, "-3"))
		count, err = repos.Setting.QuestionCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
