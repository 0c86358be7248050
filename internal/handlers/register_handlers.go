package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/middleware"
	"github.com/lucasmbp/fluxo_caixa_app/internal/platform/config"
)

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.AccessSvc)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.AccessSvc)
	registerLedgerRoutes(v1, services.LedgerSvc, services.AccessSvc)
	registerCostCenterRoutes(v1, services.CostCenterSvc, services.AccessSvc)
	registerCashFlowRoutes(v1, services.CashFlowSvc, services.AccessSvc)
	registerImportRoutes(v1, services.ImporterSvc, services.AccessSvc)
}

// requireScreen gates a route group behind one permission flag of the
// authenticated user.
func requireScreen(authorizer portssvc.ScreenAuthorizerSvc, screen domain.PermissionKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		login, ok := middleware.GetUserLoginFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		if err := authorizer.Authorize(c.Request.Context(), login, screen); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrPendingApproval):
				c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Account is awaiting approval"})
			case errors.Is(err, apperrors.ErrForbidden):
				c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Access to this screen is not allowed"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Authorization check failed"})
			}
			return
		}
		c.Next()
	}
}

// respondServiceError maps service errors to HTTP status codes.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDomainViolation):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
