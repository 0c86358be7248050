package services

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// CostCenterReaderSvc defines read operations for cost centers.
type CostCenterReaderSvc interface {
	// ListCostCenters retrieves all cost centers ordered by name.
	ListCostCenters(ctx context.Context) ([]domain.CostCenter, error)
}

// CostCenterWriterSvc defines write operations for cost centers.
type CostCenterWriterSvc interface {
	// CreateCostCenter validates and persists a new cost center.
	CreateCostCenter(ctx context.Context, req dto.UpsertCostCenterRequest) (*domain.CostCenter, error)

	// AddSubItem appends a sub-item to an existing cost center. Duplicate
	// names (case-insensitive) are rejected.
	AddSubItem(ctx context.Context, costCenterID string, subItem string) (*domain.CostCenter, error)

	// DeleteCostCenter removes a cost center. Records referencing it keep
	// their category label.
	DeleteCostCenter(ctx context.Context, costCenterID string) error
}

// CostCenterSvcFacade combines all cost center service interfaces.
type CostCenterSvcFacade interface {
	CostCenterReaderSvc
	CostCenterWriterSvc
}
