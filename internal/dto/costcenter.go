package dto

import "github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"

// UpsertCostCenterRequest creates or renames a cost center.
type UpsertCostCenterRequest struct {
	Name     string                `json:"name" binding:"required"`
	Kind     domain.CostCenterKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	SubItems []string              `json:"subItems"`
}

// AddSubItemRequest appends one sub-item to an existing cost center.
type AddSubItemRequest struct {
	SubItem string `json:"subItem" binding:"required"`
}

// CostCenterResponse is the API shape of a cost center.
type CostCenterResponse struct {
	CostCenterID string   `json:"costCenterID"`
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	SubItems     []string `json:"subItems"`
}

// ListCostCentersResponse wraps the listed cost centers.
type ListCostCentersResponse struct {
	CostCenters []CostCenterResponse `json:"costCenters"`
}

// ToCostCenterResponse converts a domain cost center to its API shape.
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	subItems := cc.SubItems
	if subItems == nil {
		subItems = []string{}
	}
	return CostCenterResponse{
		CostCenterID: cc.CostCenterID,
		Name:         cc.Name,
		Kind:         string(cc.Kind),
		SubItems:     subItems,
	}
}

// ToListCostCentersResponse converts a domain slice to the list response.
func ToListCostCentersResponse(costCenters []domain.CostCenter) ListCostCentersResponse {
	out := make([]CostCenterResponse, len(costCenters))
	for i := range costCenters {
		out[i] = ToCostCenterResponse(&costCenters[i])
	}
	return ListCostCentersResponse{CostCenters: out}
}
