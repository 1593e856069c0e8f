package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messenger-hub/apperr"
	"messenger-hub/dto/req"
	"messenger-hub/entity"
	"messenger-hub/enum"
)

func TestCreateAccountReturnsPersistedResponse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{
		Username:  strPtr("alice"),
		Email:     strPtr("alice@example.com"),
		FirstName: "Alice",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", *created.Username)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestCreateAccountDuplicateUsernameLeavesOneRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{Username: strPtr("alice")})
	require.NoError(t, err)

	_, err = env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{Username: strPtr("alice")})
	require.Error(t, err)
	assert.True(t, apperr.IsConstraintViolation(err))
	assert.Equal(t, int64(1), env.countRows(t, &entity.Account{}))
}

func TestGetAccountAbsentIsNilNotError(t *testing.T) {
	env := newTestEnv(t)

	account, err := env.accounts.GetAccount(context.Background(), 9999999)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestUpdateAccountIsPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{
		Username:  strPtr("alice"),
		Email:     strPtr("alice@example.com"),
		Phone:     strPtr("555-0100"),
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	updated, err := env.accounts.UpdateAccount(ctx, created.ID, &req.UpdateAccountRequest{
		Username: strPtr("wonderland"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "wonderland", *updated.Username)
	assert.Equal(t, "alice@example.com", *updated.Email)
	assert.Equal(t, "555-0100", *updated.Phone)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
}

func TestUpdateAccountPersistsExplicitEmptyString(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{
		Username:  strPtr("alice"),
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	// A provided empty string clears the field; only omitted fields keep
	// their stored value.
	updated, err := env.accounts.UpdateAccount(ctx, created.ID, &req.UpdateAccountRequest{
		FirstName: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Empty(t, updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)

	reloaded, err := env.accounts.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Empty(t, reloaded.FirstName)
}

func TestUpdateAccountAbsentIsNil(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.accounts.UpdateAccount(context.Background(), 9999999, &req.UpdateAccountRequest{
		Username: strPtr("ghost"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteAccountSemantics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	deleted, err := env.accounts.DeleteAccount(ctx, 9999999)
	require.NoError(t, err)
	assert.False(t, deleted)

	created, err := env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{Username: strPtr("alice")})
	require.NoError(t, err)

	deleted, err = env.accounts.DeleteAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteAccountBlockedWhileUsersRemain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	account, user, err := env.accounts.CreateAccountWithUser(ctx,
		&req.CreateAccountRequest{Username: strPtr("alice")},
		&req.CreateUserRequest{ExternalID: "100", MessengerType: enum.MessengerTelegram},
	)
	require.NoError(t, err)

	_, err = env.accounts.DeleteAccount(ctx, account.ID)
	require.ErrorIs(t, err, apperr.ErrAccountHasUsers)

	deletedUser, err := env.users.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deletedUser)

	deleted, err := env.accounts.DeleteAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCreateAccountWithUserBindsUserToNewAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	account, user, err := env.accounts.CreateAccountWithUser(ctx,
		&req.CreateAccountRequest{Username: strPtr("alice")},
		&req.CreateUserRequest{
			ExternalID:    "100",
			MessengerType: enum.MessengerTelegram,
			Username:      "alice_tg",
		},
	)
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, account.ID, user.AccountID)
}

func TestCreateAccountWithUserRollbackIsTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Occupy the external identity so the user insert inside the combined
	// operation is forced to fail after the account insert succeeded.
	_, _, err := env.accounts.CreateAccountWithUser(ctx,
		&req.CreateAccountRequest{Username: strPtr("first")},
		&req.CreateUserRequest{ExternalID: "100", MessengerType: enum.MessengerTelegram},
	)
	require.NoError(t, err)

	_, _, err = env.accounts.CreateAccountWithUser(ctx,
		&req.CreateAccountRequest{Username: strPtr("second")},
		&req.CreateUserRequest{ExternalID: "100", MessengerType: enum.MessengerTelegram},
	)
	require.Error(t, err)
	assert.True(t, apperr.IsConstraintViolation(err))

	// No half-created account may survive the rollback.
	assert.Equal(t, int64(1), env.countRows(t, &entity.Account{}))
	assert.Equal(t, int64(1), env.countRows(t, &entity.User{}))

	ghost, err := env.accounts.GetAccountByUsername(ctx, "second")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestGetAccountByUserExternalID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	account, _, err := env.accounts.CreateAccountWithUser(ctx,
		&req.CreateAccountRequest{Username: strPtr("alice")},
		&req.CreateUserRequest{ExternalID: "100", MessengerType: enum.MessengerTelegram},
	)
	require.NoError(t, err)

	resolved, err := env.accounts.GetAccountByUserExternalID(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, account.ID, resolved.ID)
}

func TestGetAllAccounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, username := range []string{"alice", "bob"} {
		_, err := env.accounts.CreateAccount(ctx, &req.CreateAccountRequest{Username: strPtr(username)})
		require.NoError(t, err)
	}

	all, err := env.accounts.GetAllAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
