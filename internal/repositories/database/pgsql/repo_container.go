package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	costCenterRepo := newPgxCostCenterRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:     ledgerRepo,
		CostCenterRepo: costCenterRepo,
		UserRepo:       userRepo,
	}
}
