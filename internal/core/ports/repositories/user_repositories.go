package repositories

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
)

// UserReader defines read operations for user accounts.
type UserReader interface {
	// FindUserByLogin retrieves a user by login (case-sensitive exact match).
	FindUserByLogin(ctx context.Context, login string) (*domain.UserAccount, error)

	// FindUsers retrieves all user accounts ordered by login.
	FindUsers(ctx context.Context) ([]domain.UserAccount, error)
}

// UserWriter defines write operations for user accounts.
type UserWriter interface {
	// SaveUser persists a new user account.
	SaveUser(ctx context.Context, user domain.UserAccount) error

	// UpsertUser inserts or replaces a user account keyed by login. State
	// machine transitions are applied as individual upserts, idempotent when
	// replayed with the same target state.
	UpsertUser(ctx context.Context, user domain.UserAccount) error

	// DeleteUser removes a user account by login.
	DeleteUser(ctx context.Context, login string) error
}

// UserRepositoryFacade combines all user account repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
