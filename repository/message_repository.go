package repository

import (
	"context"

	"gorm.io/gorm"

	"messenger-hub/entity"
	"messenger-hub/enum"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{Repository[entity.Message]{db: db}}
}

func (repo *MessageRepository) GetByChatID(ctx context.Context, chatID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateStatus moves a message through its moderation lifecycle and reports
// whether a row matched.
func (repo *MessageRepository) UpdateStatus(ctx context.Context, id uint, status enum.MessageStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
