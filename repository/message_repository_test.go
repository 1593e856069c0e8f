package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"messenger-hub/entity"
	"messenger-hub/enum"
)

func seedConversation(t *testing.T, db *gorm.DB) (userID uint, chatID uint) {
	t.Helper()
	ctx := context.Background()

	account, err := NewAccountRepository(db).Create(ctx, &entity.Account{Username: strPtr("alice")})
	require.NoError(t, err)

	user, err := NewUserRepository(db).Create(ctx, &entity.User{
		ExternalID:    "100",
		MessengerType: enum.MessengerTelegram,
		AccountID:     account.ID,
	})
	require.NoError(t, err)

	chat, err := NewChatRepository(db).Create(ctx, &entity.Chat{
		ExternalID:    "500",
		MessengerType: enum.MessengerTelegram,
		ChatType:      enum.ChatTypePrivate,
	})
	require.NoError(t, err)

	return user.ID, chat.ID
}

func TestMessageRepositoryGetByChatID(t *testing.T) {
	db := newTestDB(t)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	userID, chatID := seedConversation(t, db)

	for _, text := range []string{"first", "second"} {
		_, err := messages.Create(ctx, &entity.Message{
			MessengerType: enum.MessengerTelegram,
			Text:          text,
			UserID:        userID,
			ChatID:        chatID,
			Status:        enum.MessageStatusPending,
		})
		require.NoError(t, err)
	}

	stored, err := messages.GetByChatID(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "first", stored[0].Text)
	assert.Equal(t, "second", stored[1].Text)

	empty, err := messages.GetByChatID(ctx, 9999999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMessageRepositoryUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	userID, chatID := seedConversation(t, db)

	saved, err := messages.Create(ctx, &entity.Message{
		MessengerType: enum.MessengerTelegram,
		Text:          "hello",
		UserID:        userID,
		ChatID:        chatID,
		Status:        enum.MessageStatusPending,
	})
	require.NoError(t, err)

	updated, err := messages.UpdateStatus(ctx, saved.ID, enum.MessageStatusApproved)
	require.NoError(t, err)
	assert.True(t, updated)

	reloaded, err := messages.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, enum.MessageStatusApproved, reloaded.Status)

	updated, err = messages.UpdateStatus(ctx, 9999999, enum.MessageStatusApproved)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestChatRepositoryGetByExternalID(t *testing.T) {
	chats := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	saved, err := chats.Create(ctx, &entity.Chat{
		ExternalID:    "500",
		MessengerType: enum.MessengerTelegram,
		Title:         "General",
		ChatType:      enum.ChatTypeGroup,
	})
	require.NoError(t, err)

	found, err := chats.GetByExternalID(ctx, "500", enum.MessengerTelegram)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)

	// Same external id on another platform is a different chat.
	other, err := chats.GetByExternalID(ctx, "500", enum.MessengerDiscord)
	require.NoError(t, err)
	assert.Nil(t, other)
}
