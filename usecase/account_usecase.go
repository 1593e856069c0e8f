package usecase

import (
	"context"

	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
)

type AccountUsecase interface {
	CreateAccount(ctx context.Context, request *req.CreateAccountRequest) (res.AccountResponse, error)
	GetAccount(ctx context.Context, accountID uint) (*res.AccountResponse, error)
	GetAccountByUsername(ctx context.Context, username string) (*res.AccountResponse, error)
	GetAccountByEmail(ctx context.Context, email string) (*res.AccountResponse, error)
	GetAccountByUserExternalID(ctx context.Context, externalID string) (*res.AccountResponse, error)
	GetAllAccounts(ctx context.Context) ([]res.AccountResponse, error)
	UpdateAccount(ctx context.Context, accountID uint, request *req.UpdateAccountRequest) (*res.AccountResponse, error)
	DeleteAccount(ctx context.Context, accountID uint) (bool, error)
	CreateAccountWithUser(ctx context.Context, accountRequest *req.CreateAccountRequest, userRequest *req.CreateUserRequest) (res.AccountResponse, res.UserResponse, error)
}
