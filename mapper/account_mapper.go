package mapper

import (
	"messenger-hub/dto"
	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/entity"
)

const timeLayout = "2006-01-02 15:04:05"

func AccountFromCreateRequest(request *req.CreateAccountRequest) *entity.Account {
	return &entity.Account{
		Email:     request.Email,
		Phone:     request.Phone,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	}
}

// AccountFromProfile builds the implicit account created on first contact
// from an external platform.
func AccountFromProfile(profile *dto.ExternalProfile) *entity.Account {
	account := &entity.Account{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}
	if profile.Username != "" {
		username := profile.Username
		account.Username = &username
	}
	return account
}

func AccountToResponse(account *entity.Account) res.AccountResponse {
	return res.AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Phone:     account.Phone,
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		CreatedAt: account.CreatedAt.Format(timeLayout),
	}
}

// ApplyAccountUpdate copies only the provided fields of the partial update
// onto the loaded entity. Nil fields leave the stored value as is.
func ApplyAccountUpdate(account *entity.Account, request *req.UpdateAccountRequest) {
	if request.Username != nil {
		account.Username = request.Username
	}
	if request.FirstName != nil {
		account.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		account.LastName = *request.LastName
	}
}
