package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"messenger-hub/apperr"
	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/mapper"
	"messenger-hub/uow"
)

type AccountUsecaseImpl struct {
	UoW *uow.Manager
	*validator.Validate
	*logrus.Logger
}

func NewAccountUsecase(uowManager *uow.Manager, validate *validator.Validate, logger *logrus.Logger) AccountUsecase {
	return &AccountUsecaseImpl{UoW: uowManager, Validate: validate, Logger: logger}
}

func (uc *AccountUsecaseImpl) CreateAccount(ctx context.Context, request *req.CreateAccountRequest) (res.AccountResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request: %v", err)
		return res.AccountResponse{}, err
	}

	var response res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		saved, err := u.Accounts().Create(ctx, mapper.AccountFromCreateRequest(request))
		if err != nil {
			return err
		}
		response = mapper.AccountToResponse(saved)
		return nil
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to create account: %v", err)
		return res.AccountResponse{}, err
	}

	uc.Logger.Infof("created account id=%d", response.ID)
	return response, nil
}

func (uc *AccountUsecaseImpl) GetAccount(ctx context.Context, accountID uint) (*res.AccountResponse, error) {
	var response *res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		account, err := u.Accounts().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if account != nil {
			r := mapper.AccountToResponse(account)
			response = &r
		}
		return nil
	})
	return response, err
}

func (uc *AccountUsecaseImpl) GetAccountByUsername(ctx context.Context, username string) (*res.AccountResponse, error) {
	var response *res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		account, err := u.Accounts().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if account != nil {
			r := mapper.AccountToResponse(account)
			response = &r
		}
		return nil
	})
	return response, err
}

func (uc *AccountUsecaseImpl) GetAccountByEmail(ctx context.Context, email string) (*res.AccountResponse, error) {
	var response *res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		account, err := u.Accounts().GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if account != nil {
			r := mapper.AccountToResponse(account)
			response = &r
		}
		return nil
	})
	return response, err
}

// GetAccountByUserExternalID resolves an account starting from a
// platform-native user id. Adapters that only hold the external identity
// use this to find the owning account.
func (uc *AccountUsecaseImpl) GetAccountByUserExternalID(ctx context.Context, externalID string) (*res.AccountResponse, error) {
	var response *res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		account, err := u.Accounts().GetByUserExternalID(ctx, externalID)
		if err != nil {
			return err
		}
		if account != nil {
			r := mapper.AccountToResponse(account)
			response = &r
		}
		return nil
	})
	return response, err
}

func (uc *AccountUsecaseImpl) GetAllAccounts(ctx context.Context) ([]res.AccountResponse, error) {
	var responses []res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		accounts, err := u.Accounts().GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range accounts {
			responses = append(responses, mapper.AccountToResponse(&accounts[i]))
		}
		return nil
	})
	return responses, err
}

// UpdateAccount loads the existing account, applies only the provided
// fields and persists the result. Returns nil when the account does not
// exist, or vanished between load and update.
func (uc *AccountUsecaseImpl) UpdateAccount(ctx context.Context, accountID uint, request *req.UpdateAccountRequest) (*res.AccountResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request: %v", err)
		return nil, err
	}

	var response *res.AccountResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		existing, err := u.Accounts().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}

		mapper.ApplyAccountUpdate(existing, request)

		updated, err := u.Accounts().Update(ctx, accountID, existing)
		if err != nil {
			return err
		}
		if updated != nil {
			r := mapper.AccountToResponse(updated)
			response = &r
		}
		return nil
	})
	return response, err
}

// DeleteAccount removes the account when it exists and owns no users.
// A missing account reports false; remaining users fail the operation with
// apperr.ErrAccountHasUsers rather than orphaning platform identities.
func (uc *AccountUsecaseImpl) DeleteAccount(ctx context.Context, accountID uint) (bool, error) {
	var deleted bool
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		account, err := u.Accounts().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return nil
		}

		owned, err := u.Accounts().CountUsers(ctx, accountID)
		if err != nil {
			return err
		}
		if owned > 0 {
			return apperr.ErrAccountHasUsers
		}

		deleted, err = u.Accounts().Delete(ctx, accountID)
		return err
	})
	return deleted, err
}

// CreateAccountWithUser creates the account and its first platform user as
// one unit of work. Either both rows land or neither does; a user row with
// a dangling account_id is a consistency violation.
func (uc *AccountUsecaseImpl) CreateAccountWithUser(ctx context.Context, accountRequest *req.CreateAccountRequest, userRequest *req.CreateUserRequest) (res.AccountResponse, res.UserResponse, error) {
	if err := uc.Validate.Struct(accountRequest); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate account request: %v", err)
		return res.AccountResponse{}, res.UserResponse{}, err
	}
	if err := uc.Validate.Struct(userRequest); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate user request: %v", err)
		return res.AccountResponse{}, res.UserResponse{}, err
	}

	var accountResponse res.AccountResponse
	var userResponse res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		savedAccount, err := u.Accounts().Create(ctx, mapper.AccountFromCreateRequest(accountRequest))
		if err != nil {
			return err
		}

		savedUser, err := u.Users().Create(ctx, mapper.UserFromCreateRequest(userRequest, savedAccount.ID))
		if err != nil {
			return err
		}

		accountResponse = mapper.AccountToResponse(savedAccount)
		userResponse = mapper.UserToResponse(savedUser)
		return nil
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to create account with user: %v", err)
		return res.AccountResponse{}, res.UserResponse{}, err
	}

	uc.Logger.Infof("created account id=%d with user id=%d", accountResponse.ID, userResponse.ID)
	return accountResponse, userResponse, nil
}
