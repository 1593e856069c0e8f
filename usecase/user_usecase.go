package usecase

import (
	"context"

	"messenger-hub/dto"
	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/enum"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *req.CreateUserRequest, accountID uint) (res.UserResponse, error)
	GetUser(ctx context.Context, userID uint) (*res.UserResponse, error)
	GetUserByExternalID(ctx context.Context, externalID string, messengerType enum.MessengerType) (*res.UserResponse, error)
	GetUsersByAccountID(ctx context.Context, accountID uint) ([]res.UserResponse, error)
	GetUsersByMessengerType(ctx context.Context, messengerType enum.MessengerType) ([]res.UserResponse, error)
	UpdateUser(ctx context.Context, userID uint, request *req.UpdateUserRequest) (*res.UserResponse, error)
	DeleteUser(ctx context.Context, userID uint) (bool, error)
	GetOrCreateUser(ctx context.Context, profile *dto.ExternalProfile, accountID uint) (res.UserResponse, error)
}
