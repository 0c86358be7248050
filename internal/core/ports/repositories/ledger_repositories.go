package repositories

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger records.
type LedgerReader interface {
	// FindRecordByID retrieves a specific record by its ID.
	FindRecordByID(ctx context.Context, recordID string) (*domain.LedgerRecord, error)

	// FindRecords retrieves the full record snapshot, newest due date first.
	FindRecords(ctx context.Context) ([]domain.LedgerRecord, error)
}

// LedgerWriter defines write operations for ledger records.
type LedgerWriter interface {
	// SaveRecord persists a new record.
	SaveRecord(ctx context.Context, record domain.LedgerRecord) error

	// UpdateRecord updates an existing record.
	UpdateRecord(ctx context.Context, record domain.LedgerRecord) error

	// DeleteRecords deletes every record whose ID is in recordIDs.
	DeleteRecords(ctx context.Context, recordIDs []string) error
}

// LedgerRepositoryFacade combines all ledger record repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
