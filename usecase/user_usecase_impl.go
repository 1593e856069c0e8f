package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"messenger-hub/apperr"
	"messenger-hub/dto"
	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/enum"
	"messenger-hub/mapper"
	"messenger-hub/uow"
)

type UserUsecaseImpl struct {
	UoW *uow.Manager
	*validator.Validate
	*logrus.Logger
}

func NewUserUsecase(uowManager *uow.Manager, validate *validator.Validate, logger *logrus.Logger) UserUsecase {
	return &UserUsecaseImpl{UoW: uowManager, Validate: validate, Logger: logger}
}

// CreateUser persists a new platform identity under an existing account.
// A missing account is a business failure (apperr.ErrAccountNotFound), not
// a storage failure: the service verifies it before the insert.
func (uc *UserUsecaseImpl) CreateUser(ctx context.Context, request *req.CreateUserRequest, accountID uint) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request: %v", err)
		return res.UserResponse{}, err
	}

	var response res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		account, err := u.Accounts().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperr.ErrAccountNotFound
		}

		saved, err := u.Users().Create(ctx, mapper.UserFromCreateRequest(request, accountID))
		if err != nil {
			return err
		}
		response = mapper.UserToResponse(saved)
		return nil
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to create user: %v", err)
		return res.UserResponse{}, err
	}

	uc.Logger.Infof("created user id=%d for account id=%d", response.ID, accountID)
	return response, nil
}

func (uc *UserUsecaseImpl) GetUser(ctx context.Context, userID uint) (*res.UserResponse, error) {
	var response *res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		user, err := u.Users().Get(ctx, userID)
		if err != nil {
			return err
		}
		if user != nil {
			r := mapper.UserToResponse(user)
			response = &r
		}
		return nil
	})
	return response, err
}

func (uc *UserUsecaseImpl) GetUserByExternalID(ctx context.Context, externalID string, messengerType enum.MessengerType) (*res.UserResponse, error) {
	var response *res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		user, err := u.Users().GetByExternalID(ctx, externalID, messengerType)
		if err != nil {
			return err
		}
		if user != nil {
			r := mapper.UserToResponse(user)
			response = &r
		}
		return nil
	})
	return response, err
}

func (uc *UserUsecaseImpl) GetUsersByAccountID(ctx context.Context, accountID uint) ([]res.UserResponse, error) {
	var responses []res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		users, err := u.Users().GetByAccountID(ctx, accountID)
		if err != nil {
			return err
		}
		for i := range users {
			responses = append(responses, mapper.UserToResponse(&users[i]))
		}
		return nil
	})
	return responses, err
}

func (uc *UserUsecaseImpl) GetUsersByMessengerType(ctx context.Context, messengerType enum.MessengerType) ([]res.UserResponse, error) {
	var responses []res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		users, err := u.Users().GetByMessengerType(ctx, messengerType)
		if err != nil {
			return err
		}
		for i := range users {
			responses = append(responses, mapper.UserToResponse(&users[i]))
		}
		return nil
	})
	return responses, err
}

func (uc *UserUsecaseImpl) UpdateUser(ctx context.Context, userID uint, request *req.UpdateUserRequest) (*res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request: %v", err)
		return nil, err
	}

	var response *res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		existing, err := u.Users().Get(ctx, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}

		mapper.ApplyUserUpdate(existing, request)

		updated, err := u.Users().Update(ctx, userID, existing)
		if err != nil {
			return err
		}
		if updated != nil {
			r := mapper.UserToResponse(updated)
			response = &r
		}
		return nil
	})
	return response, err
}

func (uc *UserUsecaseImpl) DeleteUser(ctx context.Context, userID uint) (bool, error) {
	var deleted bool
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		existing, err := u.Users().Get(ctx, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		deleted, err = u.Users().Delete(ctx, userID)
		return err
	})
	return deleted, err
}

// GetOrCreateUser maps an external identity to an existing user, or creates
// one bound to accountID. Lookup and insert share one unit of work. An
// existing user is returned unchanged; there are no update-on-login
// semantics.
//
// Two requests racing for the same identity are not serialized here: the
// loser hits the (external_id, messenger_type) uniqueness constraint, and
// the service re-reads the winner instead of propagating the error.
func (uc *UserUsecaseImpl) GetOrCreateUser(ctx context.Context, profile *dto.ExternalProfile, accountID uint) (res.UserResponse, error) {
	if err := uc.Validate.Struct(profile); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate external profile: %v", err)
		return res.UserResponse{}, err
	}

	var response res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		existing, err := u.Users().GetByExternalID(ctx, profile.ExternalID, profile.MessengerType)
		if err != nil {
			return err
		}
		if existing != nil {
			response = mapper.UserToResponse(existing)
			return nil
		}

		account, err := u.Accounts().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperr.ErrAccountNotFound
		}

		saved, err := u.Users().Create(ctx, mapper.UserFromProfile(profile, accountID))
		if err != nil {
			return err
		}
		response = mapper.UserToResponse(saved)
		return nil
	})

	if apperr.IsConstraintViolation(err) {
		return uc.resolveRacedUser(ctx, profile, err)
	}
	return response, err
}

// resolveRacedUser handles the loser of a concurrent get-or-create: the
// transaction that hit the constraint is already rolled back, so the
// now-existing row is read in a fresh unit of work.
func (uc *UserUsecaseImpl) resolveRacedUser(ctx context.Context, profile *dto.ExternalProfile, cause error) (res.UserResponse, error) {
	uc.Logger.WithError(cause).Warnf("concurrent creation for external identity %s/%s, re-reading", profile.MessengerType, profile.ExternalID)

	var response res.UserResponse
	err := uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		existing, err := u.Users().GetByExternalID(ctx, profile.ExternalID, profile.MessengerType)
		if err != nil {
			return err
		}
		if existing == nil {
			// The duplicate vanished again; surface the original violation.
			return fmt.Errorf("re-read after constraint violation found nothing: %w", cause)
		}
		response = mapper.UserToResponse(existing)
		return nil
	})
	return response, err
}
