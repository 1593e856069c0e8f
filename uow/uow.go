package uow

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"messenger-hub/config/logger"
	"messenger-hub/repository"
)

// Manager hands out units of work bound to the shared database handle.
type Manager struct {
	db  *gorm.DB
	Log *logger.AppLogger
}

func NewManager(db *gorm.DB, log *logger.AppLogger) *Manager {
	return &Manager{db: db, Log: log}
}

// Begin opens a transaction and wraps it in a fresh unit of work. Callers
// that use Begin directly own the terminal commit/rollback; prefer Do.
func (m *Manager) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin unit of work: %w", tx.Error)
	}
	return &UnitOfWork{tx: tx}, nil
}

// Do runs fn inside one unit of work. The unit of work reaches a terminal
// state on every exit path: rollback when fn returns an error or panics,
// commit otherwise. The underlying transaction is released exactly once.
func (m *Manager) Do(ctx context.Context, fn func(u *UnitOfWork) error) error {
	u, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Close()

	if err := fn(u); err != nil {
		if rbErr := u.Rollback(); rbErr != nil {
			m.Log.Http.Error.Error().Err(rbErr).Msg("rollback failed")
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := u.Commit(); err != nil {
		m.Log.Http.Error.Error().Err(err).Msg("commit failed")
		return err
	}
	return nil
}

// UnitOfWork bounds the lifetime of one transactional session and exposes
// lazily-built repository handles cached for that session. All repositories
// obtained from one unit of work share the same transaction.
type UnitOfWork struct {
	tx   *gorm.DB
	done bool

	accounts *repository.AccountRepository
	users    *repository.UserRepository
	chats    *repository.ChatRepository
	messages *repository.MessageRepository
}

func (u *UnitOfWork) Accounts() *repository.AccountRepository {
	u.require()
	if u.accounts == nil {
		u.accounts = repository.NewAccountRepository(u.tx)
	}
	return u.accounts
}

func (u *UnitOfWork) Users() *repository.UserRepository {
	u.require()
	if u.users == nil {
		u.users = repository.NewUserRepository(u.tx)
	}
	return u.users
}

func (u *UnitOfWork) Chats() *repository.ChatRepository {
	u.require()
	if u.chats == nil {
		u.chats = repository.NewChatRepository(u.tx)
	}
	return u.chats
}

func (u *UnitOfWork) Messages() *repository.MessageRepository {
	u.require()
	if u.messages == nil {
		u.messages = repository.NewMessageRepository(u.tx)
	}
	return u.messages
}

// Commit ends the unit of work successfully. A commit after the unit of
// work already reached its terminal state is a no-op.
func (u *UnitOfWork) Commit() error {
	if u.done {
		return nil
	}
	u.finish()
	if err := u.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit unit of work: %w", err)
	}
	return nil
}

// Rollback discards every change made through this unit of work.
func (u *UnitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.finish()
	if err := u.tx.Rollback().Error; err != nil {
		return fmt.Errorf("rollback unit of work: %w", err)
	}
	return nil
}

// Close rolls back anything still open. Idempotent; safe to defer next to
// explicit Commit/Rollback calls.
func (u *UnitOfWork) Close() {
	if u.done {
		return
	}
	u.finish()
	u.tx.Rollback()
}

// finish marks the terminal state and clears the repository cache so a
// used-up unit of work cannot be silently reused.
func (u *UnitOfWork) finish() {
	u.done = true
	u.accounts = nil
	u.users = nil
	u.chats = nil
	u.messages = nil
}

// require fails fast when a repository accessor is reached outside the
// open window. That is a programming error, not a runtime condition.
func (u *UnitOfWork) require() {
	if u.tx == nil {
		panic("uow: repository accessed before the unit of work was opened")
	}
	if u.done {
		panic("uow: repository accessed after the unit of work was closed")
	}
}
