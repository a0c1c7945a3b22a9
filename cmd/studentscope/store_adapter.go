package main

import (
	"context"

	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/repository"
)

// storeAdapter exposes the per-entity repositories as the single read-side
// store the server expects
type storeAdapter struct {
	repos *repository.Repositories
}

func (a *storeAdapter) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return a.repos.User.GetUser(ctx, id)
}

func (a *storeAdapter) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return a.repos.User.ListUsers(ctx)
}

func (a *storeAdapter) GetConversationsByUser(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	return a.repos.Conversation.GetConversationsByUser(ctx, userID)
}

func (a *storeAdapter) GetMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	return a.repos.Message.GetMessages(ctx, conversationID)
}

func (a *storeAdapter) GetMessagesByUser(ctx context.Context, userID string) ([]domain.Message, error) {
	return a.repos.Message.GetMessagesByUser(ctx, userID)
}

func (a *storeAdapter) GetAllSettings(ctx context.Context) (map[string]string, error) {
	return a.repos.Setting.GetAllSettings(ctx)
}

func (a *storeAdapter) SetSetting(ctx context.Context, key, value string) error {
	return a.repos.Setting.SetSetting(ctx, key, value)
}
