package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
	"github.com/lucasmbp/fluxo_caixa_app/internal/platform/config"
	"github.com/lucasmbp/fluxo_caixa_app/internal/utils"
)

// accessService implements the user account state machine: registration,
// approval, per-screen permission flags and credential checks.
type accessService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAccessService creates the access control service.
func NewAccessService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AccessSvcFacade {
	return &accessService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *accessService) GetUserByLogin(ctx context.Context, login string) (*domain.UserAccount, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", login, err)
	}
	return user, nil
}

func (s *accessService) ListUsers(ctx context.Context) ([]domain.UserAccount, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Authorize grants the master account unconditionally; everyone else needs
// an active account and the screen flag set.
func (s *accessService) Authorize(ctx context.Context, login string, screen domain.PermissionKey) error {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to authorize %q: %w", login, err)
	}
	if user.IsMaster() {
		return nil
	}
	if !user.IsActive() {
		return apperrors.ErrPendingApproval
	}
	if !user.Permissions.Flag(screen) {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *accessService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.UserAccount, error) {
	if req.Login == domain.MasterLogin {
		return nil, fmt.Errorf("login %q is reserved: %w", req.Login, apperrors.ErrDuplicate)
	}
	if err := s.ensureLoginFree(ctx, req.Login); err != nil {
		return nil, err
	}

	now := time.Now()
	user := domain.UserAccount{
		Login:         req.Login,
		Email:         req.Email,
		Password:      req.Password,
		ApprovalState: domain.ApprovalPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	s.LogInfo(ctx, "user registered, pending approval", slog.String("login", user.Login))
	return &user, nil
}

func (s *accessService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.UserAccount, error) {
	if req.Login == domain.MasterLogin {
		return nil, fmt.Errorf("login %q is reserved: %w", req.Login, apperrors.ErrDuplicate)
	}
	if err := s.ensureLoginFree(ctx, req.Login); err != nil {
		return nil, err
	}

	now := time.Now()
	user := domain.UserAccount{
		Login:         req.Login,
		Email:         req.Email,
		Password:      req.Password,
		ApprovalState: domain.ApprovalActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.LogInfo(ctx, "user created by admin", slog.String("login", user.Login))
	return &user, nil
}

// Approve moves a pending account to active. Permission flags are untouched;
// granting screens is a separate step. Approving an already active account is
// a no-op.
func (s *accessService) Approve(ctx context.Context, login string) (*domain.UserAccount, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %q for approval: %w", login, err)
	}
	if user.IsActive() {
		return user, nil
	}

	user.ApprovalState = domain.ApprovalActive
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpsertUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to approve user %q: %w", login, err)
	}
	s.LogInfo(ctx, "user approved", slog.String("login", login))
	return user, nil
}

func (s *accessService) SetPermission(ctx context.Context, login string, req dto.SetPermissionRequest) (*domain.UserAccount, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %q: %w", login, err)
	}
	if user.IsMaster() && domain.PermissionKey(req.Permission) == domain.PermUserAdmin {
		return nil, fmt.Errorf("master user-administration flag cannot be changed: %w", apperrors.ErrForbidden)
	}
	if !user.Permissions.SetFlag(domain.PermissionKey(req.Permission), req.Value) {
		return nil, fmt.Errorf("unknown permission %q: %w", req.Permission, apperrors.ErrValidation)
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpsertUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update permissions for %q: %w", login, err)
	}
	s.LogInfo(ctx, "permission updated",
		slog.String("login", login),
		slog.String("permission", req.Permission),
		slog.Bool("value", req.Value))
	return user, nil
}

func (s *accessService) RemoveUser(ctx context.Context, login string) error {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		return fmt.Errorf("failed to load user %q: %w", login, err)
	}
	if user.IsMaster() {
		return fmt.Errorf("master account cannot be removed: %w", apperrors.ErrForbidden)
	}
	if err := s.userRepo.DeleteUser(ctx, login); err != nil {
		return fmt.Errorf("failed to remove user %q: %w", login, err)
	}
	s.LogInfo(ctx, "user removed", slog.String("login", login))
	return nil
}

// EnsureMaster seeds the master account at startup, or repairs its state
// and flags if a previous run left them drifted.
func (s *accessService) EnsureMaster(ctx context.Context) error {
	now := time.Now()
	master, err := s.userRepo.FindUserByLogin(ctx, domain.MasterLogin)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to look up master account: %w", err)
		}
		master = &domain.UserAccount{
			Login:         domain.MasterLogin,
			Email:         s.cfg.MasterEmail,
			Password:      s.cfg.MasterPassword,
			ApprovalState: domain.ApprovalActive,
			Permissions:   domain.AllPermissions(),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := s.userRepo.SaveUser(ctx, *master); err != nil {
			return fmt.Errorf("failed to seed master account: %w", err)
		}
		s.LogInfo(ctx, "master account seeded", slog.String("login", domain.MasterLogin))
		return nil
	}

	if master.ApprovalState == domain.ApprovalActive && master.Permissions.Flag(domain.PermUserAdmin) {
		return nil
	}
	master.ApprovalState = domain.ApprovalActive
	master.Permissions.SetFlag(domain.PermUserAdmin, true)
	master.LastUpdatedAt = now
	if err := s.userRepo.UpsertUser(ctx, *master); err != nil {
		return fmt.Errorf("failed to repair master account: %w", err)
	}
	s.LogInfo(ctx, "master account repaired", slog.String("login", domain.MasterLogin))
	return nil
}

// Authenticate checks credentials before approval state so a pending user
// with a wrong password is told the credentials are wrong, not that the
// account exists and awaits approval.
func (s *accessService) Authenticate(ctx context.Context, login string, password string) (*domain.UserAccount, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to authenticate %q: %w", login, err)
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, apperrors.ErrPendingApproval
	}
	return user, nil
}

func (s *accessService) GenerateToken(ctx context.Context, login string) (string, error) {
	token, err := utils.GenerateJWT(login, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign token", slog.String("login", login))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func (s *accessService) ensureLoginFree(ctx context.Context, login string) error {
	_, err := s.userRepo.FindUserByLogin(ctx, login)
	if err == nil {
		return fmt.Errorf("login %q already taken: %w", login, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check login %q: %w", login, err)
	}
	return nil
}
