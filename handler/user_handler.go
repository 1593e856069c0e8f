package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"messenger-hub/dto/req"
	"messenger-hub/dto/res"
	"messenger-hub/enum"
	"messenger-hub/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) CreateUser(ctx *fiber.Ctx) error {
	payload := new(req.CreateUserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	accountID := payload.AccountID
	if raw := ctx.QueryInt("accountId"); raw > 0 {
		accountID = uint(raw)
	}

	userResponse, err := handler.UserUsecase.CreateUser(ctx.Context(), payload, accountID)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to create user: %v", err)
		return mapServiceError(ctx, err)
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully created user",
		StatusCode: fiber.StatusCreated,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *UserHandler) GetUser(ctx *fiber.Ctx) error {
	userID, err := parseID(ctx, "userId")
	if err != nil {
		return err
	}

	userResponse, err := handler.UserUsecase.GetUser(ctx.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user")
		return mapServiceError(ctx, err)
	}
	if userResponse == nil {
		return notFound(ctx, "User not found")
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully retrieved user",
		StatusCode: fiber.StatusOK,
		Data:       *userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

// GetUsers lists users filtered by messenger platform, or by owning
// account when accountId is given.
func (handler *UserHandler) GetUsers(ctx *fiber.Ctx) error {
	if raw := ctx.QueryInt("accountId"); raw > 0 {
		userResponses, err := handler.UserUsecase.GetUsersByAccountID(ctx.Context(), uint(raw))
		if err != nil {
			handler.Logger.WithError(err).Errorln("Failed to get users by account")
			return mapServiceError(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.UserResponse]{
			Message:    "Successfully retrieved users",
			StatusCode: fiber.StatusOK,
			Data:       userResponses,
		})
	}

	messenger := ctx.Query("messenger")
	if messenger == "" {
		return fiber.NewError(fiber.StatusBadRequest, "messenger query parameter is required")
	}

	userResponses, err := handler.UserUsecase.GetUsersByMessengerType(ctx.Context(), enum.MessengerType(messenger))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get users by messenger")
		return mapServiceError(ctx, err)
	}

	response := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully retrieved users",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	userID, err := parseID(ctx, "userId")
	if err != nil {
		return err
	}

	payload := new(req.UpdateUserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.ErrBadRequest
	}

	userResponse, err := handler.UserUsecase.UpdateUser(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to update user")
		return mapServiceError(ctx, err)
	}
	if userResponse == nil {
		return notFound(ctx, "User not found")
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully updated user",
		StatusCode: fiber.StatusOK,
		Data:       *userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	userID, err := parseID(ctx, "userId")
	if err != nil {
		return err
	}

	deleted, err := handler.UserUsecase.DeleteUser(ctx.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete user")
		return mapServiceError(ctx, err)
	}
	if !deleted {
		return notFound(ctx, "User not found")
	}

	response := res.CommonResponse[bool]{
		Message:    "Successfully deleted user",
		StatusCode: fiber.StatusOK,
		Data:       true,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
