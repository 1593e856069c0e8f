package handler

import (
	"crypto/subtle"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"messenger-hub/dto/res"
	"messenger-hub/usecase"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type TelegramHandler struct {
	usecase.TelegramUsecase
	Secret string
	*logrus.Logger
}

func NewTelegramHandler(telegramUsecase usecase.TelegramUsecase, secret string, logger *logrus.Logger) *TelegramHandler {
	return &TelegramHandler{TelegramUsecase: telegramUsecase, Secret: secret, Logger: logger}
}

// HandleWebhook ingests Telegram updates. The shared secret set during
// webhook registration must match, otherwise the update is rejected with
// 403 before any parsing. A missing secret in the configuration also
// rejects: an empty secret would make every caller's header compare equal.
func (handler *TelegramHandler) HandleWebhook(ctx *fiber.Ctx) error {
	if handler.Secret == "" {
		handler.Logger.Errorln("Webhook secret is not configured, rejecting update")
		return ctx.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{
			Status:     fiber.ErrForbidden.Message,
			StatusCode: fiber.StatusForbidden,
			Error:      "Webhook secret not configured",
		})
	}

	supplied := ctx.Get(secretTokenHeader)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(handler.Secret)) != 1 {
		handler.Logger.Warnln("Webhook call with invalid secret token rejected")
		return ctx.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{
			Status:     fiber.ErrForbidden.Message,
			StatusCode: fiber.StatusForbidden,
			Error:      "Invalid secret token",
		})
	}

	update := new(tgbotapi.Update)
	if err := ctx.BodyParser(update); err != nil {
		handler.Logger.WithError(err).Errorln("Failed to parse telegram update")
		return fiber.ErrBadRequest
	}

	if err := handler.TelegramUsecase.ProcessUpdate(ctx.Context(), update); err != nil {
		handler.Logger.WithError(err).Errorf("Failed to process update %d: %v", update.UpdateID, err)
		return mapServiceError(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusOK)
}
