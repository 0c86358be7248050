package services

import (
	"context"
	"log/slog"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ScreenAuthorizer portssvc.ScreenAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeScreen checks if a user may access the given screen
func (s *BaseService) AuthorizeScreen(ctx context.Context, login string, screen domain.PermissionKey) error {
	if s.ScreenAuthorizer != nil {
		return s.ScreenAuthorizer.Authorize(ctx, login, screen)
	}
	s.LogDebug(ctx, "No screen authorizer provided, access granted by default",
		slog.String("login", login),
		slog.String("screen", string(screen)))
	return nil
}
