package repositories

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
)

// CostCenterReader defines read operations for cost centers.
type CostCenterReader interface {
	// FindCostCenters retrieves all cost centers ordered by name.
	FindCostCenters(ctx context.Context) ([]domain.CostCenter, error)

	// FindCostCenterByName retrieves a cost center by its (unique per kind) name.
	FindCostCenterByName(ctx context.Context, name string, kind domain.CostCenterKind) (*domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost centers.
type CostCenterWriter interface {
	// UpsertCostCenter inserts or replaces a cost center by ID.
	UpsertCostCenter(ctx context.Context, costCenter domain.CostCenter) error

	// DeleteCostCenter deletes a cost center by ID.
	DeleteCostCenter(ctx context.Context, costCenterID string) error
}

// CostCenterRepositoryFacade combines all cost center repository interfaces.
type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
