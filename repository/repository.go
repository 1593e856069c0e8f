package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"messenger-hub/apperr"
)

// Repository is the generic CRUD base shared by all entity repositories.
// It is bound to a single session handle at construction time; the unit of
// work that owns the transaction hands the handle in, so every repository
// built from one unit of work shares one transactional context. Commit and
// rollback belong to the unit of work, never to the repository.
type Repository[T any] struct {
	db *gorm.DB
}

// Create persists a new row and returns the entity with its generated id
// and server-assigned timestamps populated. Constraint rejections surface
// as apperr.ErrConstraintViolation.
func (repo Repository[T]) Create(ctx context.Context, e *T) (*T, error) {
	if err := repo.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, apperr.TranslateDBError(err)
	}
	return e, nil
}

// Get is a point lookup by primary key. An absent row is (nil, nil).
func (repo Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	e := new(T)
	err := repo.db.WithContext(ctx).First(e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (repo Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := repo.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update overwrites the row matching id with the fields of e, zero values
// included, leaving id and created_at untouched. Callers hand in the loaded
// entity with their changes merged, so writing every column keeps explicitly
// cleared fields from being silently dropped. Returns (nil, nil) when no
// such row exists.
func (repo Repository[T]) Update(ctx context.Context, id uint, e *T) (*T, error) {
	current := new(T)
	err := repo.db.WithContext(ctx).First(current, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = repo.db.WithContext(ctx).
		Model(current).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(e).Error
	if err != nil {
		return nil, apperr.TranslateDBError(err)
	}

	if err := repo.db.WithContext(ctx).First(current, id).Error; err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the row matching id and reports whether a row was
// actually removed.
func (repo Repository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return false, apperr.TranslateDBError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func first[T any](db *gorm.DB, dest *T) (*T, error) {
	err := db.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dest, nil
}
