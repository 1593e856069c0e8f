package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"messenger-hub/apperr"
	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/usecase"
)

type AccountHandler struct {
	usecase.AccountUsecase
	*logrus.Logger
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{AccountUsecase: accountUsecase, Logger: logger}
}

func (handler *AccountHandler) CreateAccount(ctx *fiber.Ctx) error {
	payload := new(req.CreateAccountRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	accountResponse, err := handler.AccountUsecase.CreateAccount(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create account: %v", err)
		return mapServiceError(ctx, err)
	}

	response := res.CommonResponse[res.AccountResponse]{
		Message:    "Successfully created account",
		StatusCode: fiber.StatusCreated,
		Data:       accountResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *AccountHandler) GetAccount(ctx *fiber.Ctx) error {
	accountID, err := parseID(ctx, "accountId")
	if err != nil {
		return err
	}

	accountResponse, err := handler.AccountUsecase.GetAccount(ctx.Context(), accountID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get account")
		return mapServiceError(ctx, err)
	}
	if accountResponse == nil {
		return notFound(ctx, "Account not found")
	}

	response := res.CommonResponse[res.AccountResponse]{
		Message:    "Successfully retrieved account",
		StatusCode: fiber.StatusOK,
		Data:       *accountResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AccountHandler) GetAllAccounts(ctx *fiber.Ctx) error {
	accountResponses, err := handler.AccountUsecase.GetAllAccounts(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all accounts")
		return mapServiceError(ctx, err)
	}

	response := res.CommonResponse[[]res.AccountResponse]{
		Message:    "Successfully retrieved accounts",
		StatusCode: fiber.StatusOK,
		Data:       accountResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// SearchAccount looks an account up by username, email or a platform user's
// external id, whichever query parameter is present.
func (handler *AccountHandler) SearchAccount(ctx *fiber.Ctx) error {
	var accountResponse *res.AccountResponse
	var err error

	switch {
	case ctx.Query("username") != "":
		accountResponse, err = handler.AccountUsecase.GetAccountByUsername(ctx.Context(), ctx.Query("username"))
	case ctx.Query("email") != "":
		accountResponse, err = handler.AccountUsecase.GetAccountByEmail(ctx.Context(), ctx.Query("email"))
	case ctx.Query("externalId") != "":
		accountResponse, err = handler.AccountUsecase.GetAccountByUserExternalID(ctx.Context(), ctx.Query("externalId"))
	default:
		return fiber.NewError(fiber.StatusBadRequest, "one of username, email or externalId is required")
	}

	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to search account")
		return mapServiceError(ctx, err)
	}
	if accountResponse == nil {
		return notFound(ctx, "Account not found")
	}

	response := res.CommonResponse[res.AccountResponse]{
		Message:    "Successfully retrieved account",
		StatusCode: fiber.StatusOK,
		Data:       *accountResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AccountHandler) UpdateAccount(ctx *fiber.Ctx) error {
	accountID, err := parseID(ctx, "accountId")
	if err != nil {
		return err
	}

	payload := new(req.UpdateAccountRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	accountResponse, err := handler.AccountUsecase.UpdateAccount(ctx.Context(), accountID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to update account")
		return mapServiceError(ctx, err)
	}
	if accountResponse == nil {
		return notFound(ctx, "Account not found")
	}

	response := res.CommonResponse[res.AccountResponse]{
		Message:    "Successfully updated account",
		StatusCode: fiber.StatusOK,
		Data:       *accountResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AccountHandler) DeleteAccount(ctx *fiber.Ctx) error {
	accountID, err := parseID(ctx, "accountId")
	if err != nil {
		return err
	}

	deleted, err := handler.AccountUsecase.DeleteAccount(ctx.Context(), accountID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete account")
		return mapServiceError(ctx, err)
	}
	if !deleted {
		return notFound(ctx, "Account not found")
	}

	response := res.CommonResponse[bool]{
		Message:    "Successfully deleted account",
		StatusCode: fiber.StatusOK,
		Data:       true,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AccountHandler) CreateAccountWithUser(ctx *fiber.Ctx) error {
	payload := new(createAccountWithUserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	accountResponse, userResponse, err := handler.AccountUsecase.CreateAccountWithUser(ctx.Context(), &payload.Account, &payload.User)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create account with user: %v", err)
		return mapServiceError(ctx, err)
	}

	response := res.CommonResponse[accountWithUserResponse]{
		Message:    "Successfully created account with user",
		StatusCode: fiber.StatusCreated,
		Data:       accountWithUserResponse{Account: accountResponse, User: userResponse},
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

type createAccountWithUserRequest struct {
	Account req.CreateAccountRequest `json:"account"`
	User    req.CreateUserRequest    `json:"user"`
}

type accountWithUserResponse struct {
	Account res.AccountResponse `json:"account"`
	User    res.UserResponse    `json:"user"`
}

func parseID(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func notFound(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusNotFound).JSON(res.ErrorResponse{
		Status:     fiber.ErrNotFound.Message,
		StatusCode: fiber.StatusNotFound,
		Error:      message,
	})
}

// mapServiceError translates the service error kinds into HTTP statuses.
// Anything unclassified stays a 500 through fiber's default handler.
func mapServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case apperr.IsConstraintViolation(err):
		return ctx.Status(fiber.StatusConflict).JSON(res.ErrorResponse{
			Status:     fiber.ErrConflict.Message,
			StatusCode: fiber.StatusConflict,
			Error:      err.Error(),
		})
	case apperr.IsDomainError(err):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnprocessableEntity.Message,
			StatusCode: fiber.StatusUnprocessableEntity,
			Error:      err.Error(),
		})
	default:
		return err
	}
}
