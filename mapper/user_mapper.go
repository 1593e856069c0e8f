package mapper

import (
	"messenger-hub/dto"
	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/entity"
)

func UserFromCreateRequest(request *req.CreateUserRequest, accountID uint) *entity.User {
	return &entity.User{
		ExternalID:    request.ExternalID,
		MessengerType: request.MessengerType,
		Username:      request.Username,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		AccountID:     accountID,
	}
}

func UserFromProfile(profile *dto.ExternalProfile, accountID uint) *entity.User {
	return &entity.User{
		ExternalID:    profile.ExternalID,
		MessengerType: profile.MessengerType,
		Username:      profile.Username,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		AccountID:     accountID,
	}
}

func UserToResponse(user *entity.User) res.UserResponse {
	return res.UserResponse{
		ID:            user.ID,
		ExternalID:    user.ExternalID,
		MessengerType: user.MessengerType,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		AccountID:     user.AccountID,
		CreatedAt:     user.CreatedAt.Format(timeLayout),
	}
}

func ApplyUserUpdate(user *entity.User, request *req.UpdateUserRequest) {
	if request.Username != nil {
		user.Username = *request.Username
	}
	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
}
