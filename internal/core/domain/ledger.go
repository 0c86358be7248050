package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction distinguishes accounts payable from accounts receivable.
type Direction string

const (
	Payable    Direction = "PAYABLE"
	Receivable Direction = "RECEIVABLE"
)

// IsValid reports whether d is one of the two known directions.
func (d Direction) IsValid() bool {
	return d == Payable || d == Receivable
}

// CostCenterKind returns the cost center kind a record of this direction
// must reference: payables classify under expenses, receivables under income.
func (d Direction) CostCenterKind() CostCenterKind {
	if d == Payable {
		return KindExpense
	}
	return KindIncome
}

// RecordStatus is the lifecycle state of a ledger record. The direction
// specific display label (PAID / RECEIVED) is a presentation concern.
type RecordStatus string

const (
	StatusPending RecordStatus = "PENDING"
	StatusSettled RecordStatus = "SETTLED"
)

// DateLayout is the calendar date format used throughout: ISO, no time part.
const DateLayout = "2006-01-02"

// LedgerRecord is a single payable or receivable entry.
type LedgerRecord struct {
	RecordID      string          `json:"recordID"`
	Direction     Direction       `json:"direction"`             // immutable after creation
	DueDate       string          `json:"dueDate"`               // ISO calendar date
	SettledDate   string          `json:"settledDate,omitempty"` // present iff status is SETTLED
	Description   string          `json:"description"`           // normalized to uppercase
	Amount        decimal.Decimal `json:"amount"`                // non-negative, two fractional digits
	PaymentMethod string          `json:"paymentMethod"`
	Status        RecordStatus    `json:"status"`
	CostCenter    string          `json:"costCenter"` // references CostCenter by name
	SubItem       string          `json:"subItem"`
	Account       string          `json:"account"` // bank/cash bucket, DefaultAccount when absent
	Client        string          `json:"client,omitempty"`
	AuditFields
}

// DefaultAccount is the bucket records fall into when no account is given.
const DefaultAccount = "GENERAL"

// AllAccounts is the sentinel account filter meaning "no filtering".
const AllAccounts = "ALL"

// AccountOrDefault returns the record's account tag, defaulting the empty tag.
func (r LedgerRecord) AccountOrDefault() string {
	if strings.TrimSpace(r.Account) == "" {
		return DefaultAccount
	}
	return r.Account
}

// MonthIndex returns the zero-based calendar month (0-11) of the record's
// due date. The second return is false when the due date is not a parseable
// ISO date; callers surface such records rather than bucketing them.
func (r LedgerRecord) MonthIndex() (int, bool) {
	t, err := time.Parse(DateLayout, r.DueDate)
	if err != nil {
		return 0, false
	}
	return int(t.Month()) - 1, true
}
