package services

import (
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Access control first since other services use it as screen authorizer
	container.AccessSvc = NewAccessService(cfg, repos.UserRepo)
	authorizer := container.AccessSvc.(portssvc.ScreenAuthorizerSvc)

	container.CostCenterSvc = NewCostCenterService(repos.CostCenterRepo)
	container.LedgerSvc = NewLedgerService(repos.LedgerRepo, repos.CostCenterRepo,
		WithLedgerScreenAuthorizer(authorizer))
	container.CashFlowSvc = NewCashFlowService(repos.LedgerRepo, repos.CostCenterRepo)
	container.ImporterSvc = NewImporterService(container.LedgerSvc)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccessSvcFacade     = (*accessService)(nil)
	_ portssvc.LedgerSvcFacade     = (*ledgerService)(nil)
	_ portssvc.CostCenterSvcFacade = (*costCenterService)(nil)
	_ portssvc.CashFlowSvc         = (*cashFlowService)(nil)
	_ portssvc.ImporterSvc         = (*importerService)(nil)
)
