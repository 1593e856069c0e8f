package mapper

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"messenger-hub/dto"
	"messenger-hub/entity"
	"messenger-hub/enum"
)

// TelegramUserToProfile reduces a Telegram user to the platform-agnostic
// profile the identity core consumes.
func TelegramUserToProfile(from *tgbotapi.User) *dto.ExternalProfile {
	return &dto.ExternalProfile{
		ExternalID:    strconv.FormatInt(from.ID, 10),
		MessengerType: enum.MessengerTelegram,
		Username:      from.UserName,
		FirstName:     from.FirstName,
		LastName:      from.LastName,
	}
}

func TelegramChatToChat(chat *tgbotapi.Chat) *entity.Chat {
	return &entity.Chat{
		ExternalID:    strconv.FormatInt(chat.ID, 10),
		MessengerType: enum.MessengerTelegram,
		Title:         chat.Title,
		ChatType:      telegramChatType(chat),
	}
}

func telegramChatType(chat *tgbotapi.Chat) enum.ChatType {
	switch {
	case chat.IsPrivate():
		return enum.ChatTypePrivate
	case chat.IsSuperGroup():
		return enum.ChatTypeSupergroup
	case chat.IsChannel():
		return enum.ChatTypeChannel
	default:
		return enum.ChatTypeGroup
	}
}
