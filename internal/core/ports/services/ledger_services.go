package services

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger records.
type LedgerReaderSvc interface {
	// GetRecordByID retrieves a single record.
	GetRecordByID(ctx context.Context, recordID string) (*domain.LedgerRecord, error)

	// ListRecords retrieves records filtered by direction and account tag.
	// An empty direction returns both directions. Account follows the
	// ALL sentinel semantics.
	ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.LedgerRecord, error)

	// ListAccounts returns the distinct account tags present across all
	// records, always including the default account, ordered alphabetically.
	ListAccounts(ctx context.Context) ([]string, error)
}

// LedgerWriterSvc defines write operations for ledger records.
type LedgerWriterSvc interface {
	// CreateRecord validates and persists a new record.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.LedgerRecord, error)

	// UpdateRecord applies the non-nil fields of req to an existing record.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.LedgerRecord, error)

	// DeleteRecords deletes the given records in one operation.
	DeleteRecords(ctx context.Context, recordIDs []string) error
}

// LedgerSvcFacade combines all ledger record service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
