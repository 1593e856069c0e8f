package repository

import (
	"context"

	"gorm.io/gorm"

	"messenger-hub/entity"
)

type AccountRepository struct {
	Repository[entity.Account]
}

// NewAccountRepository binds the repository to the given session handle,
// usually a transaction owned by a unit of work.
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{Repository[entity.Account]{db: db}}
}

func (repo *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	account := &entity.Account{}
	return first(repo.db.WithContext(ctx).Where("username = ?", username), account)
}

func (repo *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	account := &entity.Account{}
	return first(repo.db.WithContext(ctx).Where("email = ?", email), account)
}

// GetByUserExternalID resolves the owning account of a platform identity
// by joining through the users table.
func (repo *AccountRepository) GetByUserExternalID(ctx context.Context, externalID string) (*entity.Account, error) {
	account := &entity.Account{}
	return first(
		repo.db.WithContext(ctx).
			Joins("JOIN t_user ON t_user.account_id = t_account.id").
			Where("t_user.external_id = ?", externalID),
		account,
	)
}

// CountUsers reports how many users the account still owns.
func (repo *AccountRepository) CountUsers(ctx context.Context, accountID uint) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}
