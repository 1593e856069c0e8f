package usecase

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"messenger-hub/antispam"
	"messenger-hub/dto"
	"messenger-hub/entity"
	"messenger-hub/enum"
	"messenger-hub/mapper"
	"messenger-hub/uow"
)

type TelegramUsecaseImpl struct {
	UoW      *uow.Manager
	Antispam *antispam.Service
	*logrus.Logger
}

func NewTelegramUsecase(uowManager *uow.Manager, antispamService *antispam.Service, logger *logrus.Logger) TelegramUsecase {
	return &TelegramUsecaseImpl{UoW: uowManager, Antispam: antispamService, Logger: logger}
}

// ProcessUpdate ingests one webhook-delivered Telegram update. First contact
// from an unknown sender creates the account and its user atomically; after
// that the external identity resolves to the existing pair. The message is
// stored with a pending status, or rejected straight away when a spam rule
// fires.
func (uc *TelegramUsecaseImpl) ProcessUpdate(ctx context.Context, update *tgbotapi.Update) error {
	message := update.Message
	if message == nil || message.From == nil || message.Chat == nil {
		return nil
	}

	profile := mapper.TelegramUserToProfile(message.From)

	status := enum.MessageStatusPending
	check, err := uc.Antispam.CheckMessage(ctx, profile.ExternalID, message.Text)
	if err != nil {
		return err
	}
	if check.IsSpam {
		uc.Logger.Warnf("rejecting message %d from %s: rule=%s", message.MessageID, profile.ExternalID, check.Rule)
		status = enum.MessageStatusRejected
	}

	return uc.UoW.Do(ctx, func(u *uow.UnitOfWork) error {
		user, err := uc.resolveUser(ctx, u, profile)
		if err != nil {
			return err
		}

		chat, err := uc.ensureChat(ctx, u, message.Chat)
		if err != nil {
			return err
		}

		_, err = u.Messages().Create(ctx, &entity.Message{
			ExternalID:    strconv.Itoa(message.MessageID),
			MessengerType: enum.MessengerTelegram,
			Text:          message.Text,
			UserID:        user.ID,
			ChatID:        chat.ID,
			Status:        status,
		})
		return err
	})
}

// resolveUser maps the sender to a stored user, creating the account and
// user pair on first contact.
func (uc *TelegramUsecaseImpl) resolveUser(ctx context.Context, u *uow.UnitOfWork, profile *dto.ExternalProfile) (*entity.User, error) {
	user, err := u.Users().GetByExternalID(ctx, profile.ExternalID, profile.MessengerType)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	account, err := u.Accounts().Create(ctx, mapper.AccountFromProfile(profile))
	if err != nil {
		return nil, err
	}

	uc.Logger.Infof("first contact from %s/%s, created account id=%d", profile.MessengerType, profile.ExternalID, account.ID)
	return u.Users().Create(ctx, mapper.UserFromProfile(profile, account.ID))
}

func (uc *TelegramUsecaseImpl) ensureChat(ctx context.Context, u *uow.UnitOfWork, tgChat *tgbotapi.Chat) (*entity.Chat, error) {
	externalID := strconv.FormatInt(tgChat.ID, 10)
	chat, err := u.Chats().GetByExternalID(ctx, externalID, enum.MessengerTelegram)
	if err != nil {
		return nil, err
	}
	if chat != nil {
		return chat, nil
	}
	return u.Chats().Create(ctx, mapper.TelegramChatToChat(tgChat))
}
