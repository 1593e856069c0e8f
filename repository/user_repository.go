package repository

import (
	"context"

	"gorm.io/gorm"

	"messenger-hub/entity"
	"messenger-hub/enum"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository[entity.User]{db: db}}
}

// GetByExternalID looks a user up by its external identity. Uniqueness is
// on the (external_id, messenger_type) pair, not external_id alone.
func (repo *UserRepository) GetByExternalID(ctx context.Context, externalID string, messengerType enum.MessengerType) (*entity.User, error) {
	user := &entity.User{}
	return first(
		repo.db.WithContext(ctx).
			Where("external_id = ? AND messenger_type = ?", externalID, messengerType),
		user,
	)
}

func (repo *UserRepository) GetByAccountID(ctx context.Context, accountID uint) ([]entity.User, error) {
	var users []entity.User
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) GetByMessengerType(ctx context.Context, messengerType enum.MessengerType) ([]entity.User, error) {
	var users []entity.User
	err := repo.db.WithContext(ctx).
		Where("messenger_type = ?", messengerType).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
