package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// costCenterHandler handles HTTP requests for income/expense categories.
type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

// newCostCenterHandler creates a new costCenterHandler.
func newCostCenterHandler(costCenterService portssvc.CostCenterSvcFacade) *costCenterHandler {
	return &costCenterHandler{
		costCenterService: costCenterService,
	}
}

// registerCostCenterRoutes registers all cost center routes behind the
// cost centers screen flag.
func registerCostCenterRoutes(rg *gin.RouterGroup, costCenterService portssvc.CostCenterSvcFacade, authorizer portssvc.ScreenAuthorizerSvc) {
	h := newCostCenterHandler(costCenterService)

	costCenters := rg.Group("/cost-centers", requireScreen(authorizer, domain.PermCostCenters))
	{
		costCenters.GET("", h.listCostCenters)
		costCenters.POST("", h.createCostCenter)
		costCenters.POST("/:id/sub-items", h.addSubItem)
		costCenters.DELETE("/:id", h.deleteCostCenter)
	}
}

func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	costCenters, err := h.costCenterService.ListCostCenters(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list cost centers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCostCentersResponse(costCenters))
}

func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	var req dto.UpsertCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	costCenter, err := h.costCenterService.CreateCostCenter(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create cost center")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(costCenter))
}

func (h *costCenterHandler) addSubItem(c *gin.Context) {
	var req dto.AddSubItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	costCenter, err := h.costCenterService.AddSubItem(c.Request.Context(), c.Param("id"), req.SubItem)
	if err != nil {
		respondServiceError(c, err, "Failed to add sub-item")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(costCenter))
}

func (h *costCenterHandler) deleteCostCenter(c *gin.Context) {
	if err := h.costCenterService.DeleteCostCenter(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete cost center")
		return
	}
	c.Status(http.StatusNoContent)
}
