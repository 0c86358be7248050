package domain

import "github.com/shopspring/decimal"

// MonthsInYear is the fixed width of every cash flow row vector. The pivot
// operates on month-of-year buckets over a single implied year horizon.
const MonthsInYear = 12

// CashFlowRow is one category (or sub-item drill-down) line of the pivot:
// twelve month buckets plus the annual total.
type CashFlowRow struct {
	Label   string                        `json:"label"`
	SubItem bool                          `json:"subItem"` // drill-down row, excluded from totals
	Months  [MonthsInYear]decimal.Decimal `json:"months"`
	Total   decimal.Decimal               `json:"total"`
}

// RecordViolation reports a record the aggregation could not place: a cost
// center kind that mismatches the record's direction, an unknown direction or
// kind value, or an unparseable due date. Violations are surfaced to the
// caller, never auto-corrected.
type RecordViolation struct {
	RecordID string `json:"recordID"`
	Reason   string `json:"reason"`
}

// CashFlowMatrix is the category x month grid consumed by the cash flow
// table, the dashboard and the CSV export.
type CashFlowMatrix struct {
	IncomeRows  []CashFlowRow                 `json:"incomeRows"`
	ExpenseRows []CashFlowRow                 `json:"expenseRows"`
	TotalIn     [MonthsInYear]decimal.Decimal `json:"totalIn"`
	TotalOut    [MonthsInYear]decimal.Decimal `json:"totalOut"`
	Balance     [MonthsInYear]decimal.Decimal `json:"balance"`

	AnnualIn      decimal.Decimal `json:"annualIn"`
	AnnualOut     decimal.Decimal `json:"annualOut"`
	AnnualBalance decimal.Decimal `json:"annualBalance"`

	Violations []RecordViolation `json:"violations,omitempty"`
}
