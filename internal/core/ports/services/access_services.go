package services

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// AccessReaderSvc defines read operations over user accounts.
type AccessReaderSvc interface {
	// GetUserByLogin retrieves a user account.
	GetUserByLogin(ctx context.Context, login string) (*domain.UserAccount, error)

	// ListUsers retrieves all user accounts ordered by login.
	ListUsers(ctx context.Context) ([]domain.UserAccount, error)

	// Authorize reports whether the user may access the given screen.
	// The master account is always authorized.
	Authorize(ctx context.Context, login string, screen domain.PermissionKey) error
}

// AccessWriterSvc defines the account state machine transitions.
type AccessWriterSvc interface {
	// Register creates a self-service account, pending approval with every
	// screen flag off.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.UserAccount, error)

	// CreateUser creates an account on behalf of an administrator. The
	// account is active immediately, with every screen flag off.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.UserAccount, error)

	// Approve activates a pending account. Permission flags are left as they
	// are. Idempotent on active accounts.
	Approve(ctx context.Context, login string) (*domain.UserAccount, error)

	// SetPermission toggles a single screen flag. The master account's
	// user-administration flag cannot be changed.
	SetPermission(ctx context.Context, login string, req dto.SetPermissionRequest) (*domain.UserAccount, error)

	// RemoveUser deletes an account. The master account cannot be removed.
	RemoveUser(ctx context.Context, login string) error

	// EnsureMaster seeds the master account if missing and repairs its
	// invariant fields if drifted. Called once at startup.
	EnsureMaster(ctx context.Context) error
}

// ScreenAuthorizerSvc gates screen access by permission flag. Services that
// only need the gate depend on this narrow interface.
type ScreenAuthorizerSvc interface {
	Authorize(ctx context.Context, login string, screen domain.PermissionKey) error
}

// AuthSvc authenticates credentials and issues tokens.
type AuthSvc interface {
	// Authenticate verifies login and password, rejecting wrong credentials
	// before reporting a pending approval state.
	Authenticate(ctx context.Context, login string, password string) (*domain.UserAccount, error)

	// GenerateToken issues a signed token for an authenticated account.
	GenerateToken(ctx context.Context, login string) (string, error)
}

// AccessSvcFacade combines all user account service interfaces.
type AccessSvcFacade interface {
	AccessReaderSvc
	AccessWriterSvc
	AuthSvc
}
