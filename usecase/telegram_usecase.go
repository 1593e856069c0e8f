package usecase

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramUsecase interface {
	ProcessUpdate(ctx context.Context, update *tgbotapi.Update) error
}
