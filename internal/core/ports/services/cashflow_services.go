package services

import (
	"context"

	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// CashFlowSvc builds the category-by-month aggregations over the ledger.
type CashFlowSvc interface {
	// BuildMatrix computes the cash flow pivot for one account scope,
	// optionally expanding sub-item drill-down rows.
	BuildMatrix(ctx context.Context, params dto.CashFlowParams) (*dto.CashFlowResponse, error)

	// BuildSummary computes the dashboard totals, monthly series and top
	// expense categories for one account scope.
	BuildSummary(ctx context.Context, params dto.SummaryParams) (*dto.SummaryResponse, error)

	// BuildReport filters records by the report criteria and totals them.
	BuildReport(ctx context.Context, params dto.ReportParams) (*dto.ReportResponse, error)

	// ExportReportCSV renders the filtered report as spreadsheet-friendly
	// CSV bytes, UTF-8 BOM prefixed, semicolon delimited.
	ExportReportCSV(ctx context.Context, params dto.ReportParams) ([]byte, error)
}
