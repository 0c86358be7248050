package services

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// ImporterSvc turns raw CSV text into ledger records in two steps: a pure
// preview parse, then a commit of the reviewed rows.
type ImporterSvc interface {
	// PreviewImport parses the CSV content heuristically and returns the
	// candidate records plus a parse report. Nothing is persisted.
	PreviewImport(ctx context.Context, req dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error)

	// CommitImport persists the reviewed candidate rows.
	CommitImport(ctx context.Context, req dto.ImportCommitRequest) (*dto.ImportCommitResponse, error)
}
