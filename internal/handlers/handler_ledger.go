package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
	"github.com/lucasmbp/fluxo_caixa_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for payable and receivable records.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	authorizer    portssvc.ScreenAuthorizerSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade, authorizer portssvc.ScreenAuthorizerSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		authorizer:    authorizer,
	}
}

// registerLedgerRoutes registers all ledger record routes. The payables and
// receivables screens have separate flags, so authorization happens per
// request against the direction being touched.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, authorizer portssvc.ScreenAuthorizerSvc) {
	h := newLedgerHandler(ledgerService, authorizer)

	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.GET("/accounts", h.listAccounts)
		records.GET("/:id", h.getRecord)
		records.POST("", h.createRecord)
		records.PUT("/:id", h.updateRecord)
		records.POST("/delete", h.deleteRecords)
	}
}

// authorizeDirection maps a record direction to its screen flag and checks
// it for the authenticated user.
func (h *ledgerHandler) authorizeDirection(c *gin.Context, direction domain.Direction) bool {
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

func (h *ledgerHandler) listRecords(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Direction != "" && !h.authorizeDirection(c, domain.Direction(params.Direction)) {
		return
	}

	records, err := h.ledgerService.ListRecords(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

func (h *ledgerHandler) listAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.AccountsResponse{Accounts: accounts})
}

func (h *ledgerHandler) getRecord(c *gin.Context) {
	record, err := h.ledgerService.GetRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get record")
		return
	}
	if !h.authorizeDirection(c, record.Direction) {
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

func (h *ledgerHandler) createRecord(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if !h.authorizeDirection(c, req.Direction) {
		return
	}

	record, err := h.ledgerService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

func (h *ledgerHandler) updateRecord(c *gin.Context) {
	recordID := c.Param("id")
	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	existing, err := h.ledgerService.GetRecordByID(c.Request.Context(), recordID)
	if err != nil {
		respondServiceError(c, err, "Failed to get record")
		return
	}
	if !h.authorizeDirection(c, existing.Direction) {
		return
	}

	record, err := h.ledgerService.UpdateRecord(c.Request.Context(), recordID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

func (h *ledgerHandler) deleteRecords(c *gin.Context) {
	var req dto.DeleteRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	// Check the screen flag for every direction being deleted.
	seen := map[domain.Direction]bool{}
	for _, id := range req.RecordIDs {
		record, err := h.ledgerService.GetRecordByID(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err, "Failed to get record")
			return
		}
		if !seen[record.Direction] {
			if !h.authorizeDirection(c, record.Direction) {
				return
			}
			seen[record.Direction] = true
		}
	}

	if err := h.ledgerService.DeleteRecords(c.Request.Context(), req.RecordIDs); err != nil {
		respondServiceError(c, err, "Failed to delete records")
		return
	}
	c.Status(http.StatusNoContent)
}
