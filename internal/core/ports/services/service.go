package services

// ServiceContainer holds all service facades needed by the handlers.
type ServiceContainer struct {
	LedgerSvc     LedgerSvcFacade
	CostCenterSvc CostCenterSvcFacade
	CashFlowSvc   CashFlowSvc
	ImporterSvc   ImporterSvc
	AccessSvc     AccessSvcFacade
}
