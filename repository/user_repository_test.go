package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messenger-hub/apperr"
	"messenger-hub/entity"
	"messenger-hub/enum"
)

func seedAccount(t *testing.T, accounts *AccountRepository) *entity.Account {
	t.Helper()
	account, err := accounts.Create(context.Background(), &entity.Account{Username: strPtr("owner")})
	require.NoError(t, err)
	return account
}

func TestUserRepositoryGetByExternalID(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	account := seedAccount(t, accounts)
	saved, err := users.Create(ctx, &entity.User{
		ExternalID:    "100",
		MessengerType: enum.MessengerTelegram,
		Username:      "alice_tg",
		AccountID:     account.ID,
	})
	require.NoError(t, err)

	found, err := users.GetByExternalID(ctx, "100", enum.MessengerTelegram)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)

	absent, err := users.GetByExternalID(ctx, "100", enum.MessengerDiscord)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserRepositoryExternalIdentityUniqueness(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	account := seedAccount(t, accounts)

	_, err := users.Create(ctx, &entity.User{
		ExternalID:    "100",
		MessengerType: enum.MessengerTelegram,
		AccountID:     account.ID,
	})
	require.NoError(t, err)

	_, err = users.Create(ctx, &entity.User{
		ExternalID:    "100",
		MessengerType: enum.MessengerTelegram,
		AccountID:     account.ID,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConstraintViolation(err))
}

func TestUserRepositoryCrossPlatformIdentitiesCoexist(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	account := seedAccount(t, accounts)

	// Uniqueness is on the (external_id, messenger_type) pair, not
	// external_id alone.
	tg, err := users.Create(ctx, &entity.User{
		ExternalID:    "100",
		MessengerType: enum.MessengerTelegram,
		AccountID:     account.ID,
	})
	require.NoError(t, err)

	discord, err := users.Create(ctx, &entity.User{
		ExternalID:    "100",
		MessengerType: enum.MessengerDiscord,
		AccountID:     account.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, tg.ID, discord.ID)
}

func TestUserRepositoryGetByAccountID(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	account := seedAccount(t, accounts)
	other, err := accounts.Create(ctx, &entity.Account{Username: strPtr("other")})
	require.NoError(t, err)

	for _, u := range []entity.User{
		{ExternalID: "1", MessengerType: enum.MessengerTelegram, AccountID: account.ID},
		{ExternalID: "2", MessengerType: enum.MessengerVK, AccountID: account.ID},
		{ExternalID: "3", MessengerType: enum.MessengerTelegram, AccountID: other.ID},
	} {
		u := u
		_, err := users.Create(ctx, &u)
		require.NoError(t, err)
	}

	owned, err := users.GetByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)
}

func TestUserRepositoryGetByMessengerType(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	account := seedAccount(t, accounts)

	for _, u := range []entity.User{
		{ExternalID: "1", MessengerType: enum.MessengerTelegram, AccountID: account.ID},
		{ExternalID: "2", MessengerType: enum.MessengerTelegram, AccountID: account.ID},
		{ExternalID: "3", MessengerType: enum.MessengerVK, AccountID: account.ID},
	} {
		u := u
		_, err := users.Create(ctx, &u)
		require.NoError(t, err)
	}

	telegramUsers, err := users.GetByMessengerType(ctx, enum.MessengerTelegram)
	require.NoError(t, err)
	assert.Len(t, telegramUsers, 2)
}

func TestUserRepositoryDeleteAbsentReturnsFalse(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	deleted, err := users.Delete(context.Background(), 9999999)
	require.NoError(t, err)
	assert.False(t, deleted)
}
