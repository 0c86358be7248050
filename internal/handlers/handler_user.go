package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// userHandler handles HTTP requests for user administration.
type userHandler struct {
	accessService portssvc.AccessSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(accessService portssvc.AccessSvcFacade) *userHandler {
	return &userHandler{
		accessService: accessService,
	}
}

// registerUserRoutes registers all user administration routes. Every route
// requires the user admin screen flag.
func registerUserRoutes(rg *gin.RouterGroup, accessService portssvc.AccessSvcFacade) {
	h := newUserHandler(accessService)

	users := rg.Group("/users", requireScreen(accessService, domain.PermUserAdmin))
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.POST("/:login/approve", h.approveUser)
		users.PUT("/:login/permissions", h.setPermission)
		users.DELETE("/:login", h.deleteUser)
	}
}

func (h *userHandler) listUsers(c *gin.Context) {
	users, err := h.accessService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

func (h *userHandler) createUser(c *gin.Context) {
	logger := loggerFrom(c)
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.accessService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("login", user.Login))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *userHandler) approveUser(c *gin.Context) {
	login := c.Param("login")

	user, err := h.accessService.Approve(c.Request.Context(), login)
	if err != nil {
		respondServiceError(c, err, "Failed to approve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) setPermission(c *gin.Context) {
	login := c.Param("login")
	var req dto.SetPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.accessService.SetPermission(c.Request.Context(), login, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update permission")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) deleteUser(c *gin.Context) {
	login := c.Param("login")

	if err := h.accessService.RemoveUser(c.Request.Context(), login); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
