package repository

import (
	"context"

	"gorm.io/gorm"

	"messenger-hub/entity"
	"messenger-hub/enum"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{Repository[entity.Chat]{db: db}}
}

func (repo *ChatRepository) GetByExternalID(ctx context.Context, externalID string, messengerType enum.MessengerType) (*entity.Chat, error) {
	chat := &entity.Chat{}
	return first(
		repo.db.WithContext(ctx).
			Where("external_id = ? AND messenger_type = ?", externalID, messengerType),
		chat,
	)
}
