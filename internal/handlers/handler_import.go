package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
	"github.com/lucasmbp/fluxo_caixa_app/internal/middleware"
)

// importHandler handles the two-step CSV import flow.
type importHandler struct {
	importerService portssvc.ImporterSvc
	authorizer      portssvc.ScreenAuthorizerSvc
}

// newImportHandler creates a new importHandler.
func newImportHandler(importerService portssvc.ImporterSvc, authorizer portssvc.ScreenAuthorizerSvc) *importHandler {
	return &importHandler{
		importerService: importerService,
		authorizer:      authorizer,
	}
}

// registerImportRoutes registers the import routes. Importing writes into
// the payables or receivables screen, so the matching flag is required.
func registerImportRoutes(rg *gin.RouterGroup, importerService portssvc.ImporterSvc, authorizer portssvc.ScreenAuthorizerSvc) {
	h := newImportHandler(importerService, authorizer)

	imports := rg.Group("/import")
	{
		imports.POST("/preview", h.preview)
		imports.POST("/commit", h.commit)
	}
}

func (h *importHandler) authorizeDirection(c *gin.Context, direction domain.Direction) bool {
	login, ok := middleware.GetUserLoginFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return false
	}
	screen := domain.PermPayables
	if direction == domain.Receivable {
		screen = domain.PermReceivables
	}
	if err := h.authorizer.Authorize(c.Request.Context(), login, screen); err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Access to this screen is not allowed"})
		return false
	}
	return true
}

func (h *importHandler) preview(c *gin.Context) {
	var req dto.ImportPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if !h.authorizeDirection(c, req.Direction) {
		return
	}

	preview, err := h.importerService.PreviewImport(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to preview import")
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *importHandler) commit(c *gin.Context) {
	var req dto.ImportCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	for _, record := range req.Records {
		if !h.authorizeDirection(c, record.Direction) {
			return
		}
	}

	result, err := h.importerService.CommitImport(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to commit import")
		return
	}
	c.JSON(http.StatusCreated, result)
}
