package dto

import (
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthLabels are the fixed column headers of the cash flow matrix,
// January through December.
var MonthLabels = [domain.MonthsInYear]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// CashFlowParams defines query parameters for the cash flow matrix.
type CashFlowParams struct {
	Account string `form:"account"`
	Expand  bool   `form:"expand"`
}

// CashFlowRowResponse is one pivot row rendered for the API. Amounts are
// fixed to two decimal places as strings to avoid float drift in clients.
type CashFlowRowResponse struct {
	Label   string                      `json:"label"`
	SubItem bool                        `json:"subItem"`
	Months  [domain.MonthsInYear]string `json:"months"`
	Total   string                      `json:"total"`
}

// CashFlowResponse is the full category-by-month matrix.
type CashFlowResponse struct {
	MonthLabels   [domain.MonthsInYear]string `json:"monthLabels"`
	IncomeRows    []CashFlowRowResponse       `json:"incomeRows"`
	ExpenseRows   []CashFlowRowResponse       `json:"expenseRows"`
	TotalIn       [domain.MonthsInYear]string `json:"totalIn"`
	TotalOut      [domain.MonthsInYear]string `json:"totalOut"`
	Balance       [domain.MonthsInYear]string `json:"balance"`
	AnnualIn      string                      `json:"annualIn"`
	AnnualOut     string                      `json:"annualOut"`
	AnnualBalance string                      `json:"annualBalance"`
	Violations    []ViolationResponse         `json:"violations,omitempty"`
}

// ViolationResponse reports a record excluded from the matrix.
type ViolationResponse struct {
	RecordID string `json:"recordID"`
	Reason   string `json:"reason"`
}

// SummaryParams defines query parameters for the dashboard summary.
type SummaryParams struct {
	Account string `form:"account"`
}

// SummaryResponse backs the dashboard cards and charts.
type SummaryResponse struct {
	TotalIncome       string                      `json:"totalIncome"`
	TotalExpense      string                      `json:"totalExpense"`
	Balance           string                      `json:"balance"`
	PendingPayable    string                      `json:"pendingPayable"`
	PendingReceivable string                      `json:"pendingReceivable"`
	MonthLabels       [domain.MonthsInYear]string `json:"monthLabels"`
	MonthlyIncome     [domain.MonthsInYear]string `json:"monthlyIncome"`
	MonthlyExpense    [domain.MonthsInYear]string `json:"monthlyExpense"`
	TopExpenses       []CategoryTotalResponse     `json:"topExpenses"`
}

// CategoryTotalResponse is one (cost center, total) pair for ranking charts.
type CategoryTotalResponse struct {
	CostCenter string `json:"costCenter"`
	Total      string `json:"total"`
}

// ReportParams defines the filter set of the reports screen. Zero values
// mean "no filter"; Account additionally honors the ALL sentinel.
type ReportParams struct {
	Direction     string `form:"direction" binding:"omitempty,oneof=PAYABLE RECEIVABLE"`
	Status        string `form:"status" binding:"omitempty,oneof=PENDING SETTLED"`
	PaymentMethod string `form:"paymentMethod"`
	CostCenter    string `form:"costCenter"`
	Account       string `form:"account"`
	Year          int    `form:"year"`
}

// ReportResponse returns the filtered rows plus their amount total.
type ReportResponse struct {
	Records []RecordResponse `json:"records"`
	Total   string           `json:"total"`
}

func fixed(months [domain.MonthsInYear]decimal.Decimal) [domain.MonthsInYear]string {
	var out [domain.MonthsInYear]string
	for i := range months {
		out[i] = months[i].StringFixed(2)
	}
	return out
}

func toRowResponse(row domain.CashFlowRow) CashFlowRowResponse {
	return CashFlowRowResponse{
		Label:   row.Label,
		SubItem: row.SubItem,
		Months:  fixed(row.Months),
		Total:   row.Total.StringFixed(2),
	}
}

// ToCashFlowResponse converts the domain matrix to its API shape.
func ToCashFlowResponse(m *domain.CashFlowMatrix) CashFlowResponse {
	incomeRows := make([]CashFlowRowResponse, len(m.IncomeRows))
	for i, row := range m.IncomeRows {
		incomeRows[i] = toRowResponse(row)
	}
	expenseRows := make([]CashFlowRowResponse, len(m.ExpenseRows))
	for i, row := range m.ExpenseRows {
		expenseRows[i] = toRowResponse(row)
	}
	violations := make([]ViolationResponse, len(m.Violations))
	for i, v := range m.Violations {
		violations[i] = ViolationResponse{RecordID: v.RecordID, Reason: v.Reason}
	}
	return CashFlowResponse{
		MonthLabels:   MonthLabels,
		IncomeRows:    incomeRows,
		ExpenseRows:   expenseRows,
		TotalIn:       fixed(m.TotalIn),
		TotalOut:      fixed(m.TotalOut),
		Balance:       fixed(m.Balance),
		AnnualIn:      m.AnnualIn.StringFixed(2),
		AnnualOut:     m.AnnualOut.StringFixed(2),
		AnnualBalance: m.AnnualBalance.StringFixed(2),
		Violations:    violations,
	}
}
