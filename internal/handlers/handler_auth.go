package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
	"github.com/lucasmbp/fluxo_caixa_app/internal/middleware"
	"github.com/lucasmbp/fluxo_caixa_app/internal/platform/config"
)

// AuthHandler handles login and self-service registration.
type AuthHandler struct {
	accessService portssvc.AccessSvcFacade
	cfg           *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accessService portssvc.AccessSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accessService: accessService,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, accessService portssvc.AccessSvcFacade) {
	h := NewAuthHandler(accessService, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", h.Register)
	}
}

// Login authenticates credentials and returns a signed token plus the
// account so the client can gate its navigation.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.accessService.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid login or password"})
		case errors.Is(err, apperrors.ErrPendingApproval):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account is awaiting approval"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		}
		return
	}

	token, err := h.accessService.GenerateToken(c.Request.Context(), user.Login)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Register creates a self-service account pending approval.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.accessService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Login already taken"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func loggerFrom(c *gin.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(c.Request.Context()); logger != nil {
		return logger
	}
	return slog.Default()
}
