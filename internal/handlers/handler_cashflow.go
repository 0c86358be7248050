package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// cashFlowHandler serves the pivot matrix, the dashboard summary and the
// filtered reports.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvc
}

// newCashFlowHandler creates a new cashFlowHandler.
func newCashFlowHandler(cashFlowService portssvc.CashFlowSvc) *cashFlowHandler {
	return &cashFlowHandler{
		cashFlowService: cashFlowService,
	}
}

// registerCashFlowRoutes registers the aggregation routes, each behind its
// own screen flag.
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowSvc, authorizer portssvc.ScreenAuthorizerSvc) {
	h := newCashFlowHandler(cashFlowService)

	rg.GET("/cashflow", requireScreen(authorizer, domain.PermCashFlow), h.getMatrix)
	rg.GET("/dashboard", requireScreen(authorizer, domain.PermDashboard), h.getSummary)

	reports := rg.Group("/reports", requireScreen(authorizer, domain.PermReports))
	{
		reports.GET("", h.getReport)
		reports.GET("/export", h.exportReport)
	}
}

func (h *cashFlowHandler) getMatrix(c *gin.Context) {
	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	matrix, err := h.cashFlowService.BuildMatrix(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to build cash flow matrix")
		return
	}
	c.JSON(http.StatusOK, matrix)
}

func (h *cashFlowHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.cashFlowService.BuildSummary(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *cashFlowHandler) getReport(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.cashFlowService.BuildReport(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *cashFlowHandler) exportReport(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	csv, err := h.cashFlowService.ExportReportCSV(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to export report")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="report.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}
