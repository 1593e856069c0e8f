package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds every service method is allowed to surface. Read paths report
// "not found" as a nil result, never as an error.
var (
	// ErrConstraintViolation marks a write rejected by a uniqueness or
	// foreign-key constraint at the storage boundary.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrAccountNotFound is the business failure raised when a user is
	// created against an account id that does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountHasUsers blocks deleting an account that still owns users.
	ErrAccountHasUsers = errors.New("account still owns users")
)

// TranslateDBError classifies storage errors so callers never see a raw,
// unclassified driver error on a write path. Requires TranslateError to be
// enabled on the gorm session.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}

func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrAccountHasUsers)
}
