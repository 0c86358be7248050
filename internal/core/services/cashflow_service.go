package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
	"github.com/lucasmbp/fluxo_caixa_app/internal/utils/accounting"
)

// topExpenseLimit caps the dashboard expense ranking.
const topExpenseLimit = 5

// exportBOM makes spreadsheet tools open the export as UTF-8.
var exportBOM = []byte{0xEF, 0xBB, 0xBF}

// cashFlowService builds the pivot matrix, dashboard summary and filtered
// reports over the full record snapshot.
type cashFlowService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerReader
	costCenterRepo portsrepo.CostCenterReader
}

// NewCashFlowService creates the aggregation service.
func NewCashFlowService(ledgerRepo portsrepo.LedgerReader, costCenterRepo portsrepo.CostCenterReader) portssvc.CashFlowSvc {
	return &cashFlowService{
		ledgerRepo:     ledgerRepo,
		costCenterRepo: costCenterRepo,
	}
}

func (s *cashFlowService) BuildMatrix(ctx context.Context, params dto.CashFlowParams) (*dto.CashFlowResponse, error) {
	records, err := s.loadRecords(ctx, params.Account)
	if err != nil {
		return nil, err
	}
	costCenters, err := s.costCenterRepo.FindCostCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost centers: %w", err)
	}

	matrix := accounting.BuildCashFlowMatrix(records, costCenters, params.Expand)
	response := dto.ToCashFlowResponse(&matrix)
	return &response, nil
}

func (s *cashFlowService) BuildSummary(ctx context.Context, params dto.SummaryParams) (*dto.SummaryResponse, error) {
	records, err := s.loadRecords(ctx, params.Account)
	if err != nil {
		return nil, err
	}

	var monthlyIncome, monthlyExpense [domain.MonthsInYear]decimal.Decimal
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	pendingPayable := decimal.Zero
	pendingReceivable := decimal.Zero
	expenseByCenter := make(map[string]decimal.Decimal)

	for _, r := range records {
		switch r.Direction {
		case domain.Receivable:
			totalIncome = totalIncome.Add(r.Amount)
			if r.Status == domain.StatusPending {
				pendingReceivable = pendingReceivable.Add(r.Amount)
			}
			if month, ok := r.MonthIndex(); ok {
				monthlyIncome[month] = monthlyIncome[month].Add(r.Amount)
			}
		case domain.Payable:
			totalExpense = totalExpense.Add(r.Amount)
			if r.Status == domain.StatusPending {
				pendingPayable = pendingPayable.Add(r.Amount)
			}
			if month, ok := r.MonthIndex(); ok {
				monthlyExpense[month] = monthlyExpense[month].Add(r.Amount)
			}
			center := r.CostCenter
			if center == "" {
				center = "OTHERS"
			}
			expenseByCenter[center] = expenseByCenter[center].Add(r.Amount)
		}
	}

	topExpenses := rankExpenses(expenseByCenter)

	response := &dto.SummaryResponse{
		TotalIncome:       totalIncome.StringFixed(2),
		TotalExpense:      totalExpense.StringFixed(2),
		Balance:           totalIncome.Sub(totalExpense).StringFixed(2),
		PendingPayable:    pendingPayable.StringFixed(2),
		PendingReceivable: pendingReceivable.StringFixed(2),
		MonthLabels:       dto.MonthLabels,
		TopExpenses:       topExpenses,
	}
	for i := 0; i < domain.MonthsInYear; i++ {
		response.MonthlyIncome[i] = monthlyIncome[i].StringFixed(2)
		response.MonthlyExpense[i] = monthlyExpense[i].StringFixed(2)
	}
	return response, nil
}

func (s *cashFlowService) BuildReport(ctx context.Context, params dto.ReportParams) (*dto.ReportResponse, error) {
	records, err := s.filterReport(ctx, params)
	if err != nil {
		return nil, err
	}
	listed := dto.ToListRecordsResponse(records)
	return &dto.ReportResponse{
		Records: listed.Records,
		Total:   accounting.SumAmounts(records).StringFixed(2),
	}, nil
}

// ExportReportCSV renders the filtered report the way pt-BR spreadsheet
// tools expect it: UTF-8 BOM, semicolon delimiter, decimal comma, and any
// semicolon inside a field downgraded to a comma.
func (s *cashFlowService) ExportReportCSV(ctx context.Context, params dto.ReportParams) ([]byte, error) {
	records, err := s.filterReport(ctx, params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(exportBOM)
	buf.WriteString("Due Date;Account;Cost Center;Sub-Item;Description;Payment Method;Status;Amount\r\n")
	for _, r := range records {
		fields := []string{
			r.DueDate,
			r.AccountOrDefault(),
			r.CostCenter,
			r.SubItem,
			r.Description,
			r.PaymentMethod,
			exportStatusLabel(r),
			strings.ReplaceAll(r.Amount.StringFixed(2), ".", ","),
		}
		for i, field := range fields {
			if i > 0 {
				buf.WriteByte(';')
			}
			buf.WriteString(strings.ReplaceAll(field, ";", ","))
		}
		buf.WriteString("\r\n")
	}
	return buf.Bytes(), nil
}

func (s *cashFlowService) loadRecords(ctx context.Context, account string) ([]domain.LedgerRecord, error) {
	records, err := s.ledgerRepo.FindRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	account = strings.ToUpper(strings.TrimSpace(account))
	if account == "" || account == domain.AllAccounts {
		return records, nil
	}
	filtered := make([]domain.LedgerRecord, 0, len(records))
	for _, r := range records {
		if r.AccountOrDefault() == account {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *cashFlowService) filterReport(ctx context.Context, params dto.ReportParams) ([]domain.LedgerRecord, error) {
	records, err := s.loadRecords(ctx, params.Account)
	if err != nil {
		return nil, err
	}

	direction := domain.Direction(params.Direction)
	status := domain.RecordStatus(params.Status)
	paymentMethod := strings.ToUpper(strings.TrimSpace(params.PaymentMethod))
	costCenter := strings.ToUpper(strings.TrimSpace(params.CostCenter))
	year := ""
	if params.Year > 0 {
		year = strconv.Itoa(params.Year) + "-"
	}

	filtered := make([]domain.LedgerRecord, 0, len(records))
	for _, r := range records {
		if direction != "" && r.Direction != direction {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		if paymentMethod != "" && r.PaymentMethod != paymentMethod {
			continue
		}
		if costCenter != "" && r.CostCenter != costCenter {
			continue
		}
		if year != "" && !strings.HasPrefix(r.DueDate, year) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func exportStatusLabel(r domain.LedgerRecord) string {
	if r.Status != domain.StatusSettled {
		return "PENDENTE"
	}
	if r.Direction == domain.Receivable {
		return "RECEBIDO"
	}
	return "PAGO"
}

func rankExpenses(expenseByCenter map[string]decimal.Decimal) []dto.CategoryTotalResponse {
	type entry struct {
		center string
		total  decimal.Decimal
	}
	entries := make([]entry, 0, len(expenseByCenter))
	for center, total := range expenseByCenter {
		entries = append(entries, entry{center, total})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total.Equal(entries[j].total) {
			return entries[i].center < entries[j].center
		}
		return entries[i].total.GreaterThan(entries[j].total)
	})
	if len(entries) > topExpenseLimit {
		entries = entries[:topExpenseLimit]
	}
	out := make([]dto.CategoryTotalResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.CategoryTotalResponse{CostCenter: e.center, Total: e.total.StringFixed(2)}
	}
	return out
}
