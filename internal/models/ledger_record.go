package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is the storage-layer shape of a payable/receivable entry.
type LedgerRecord struct {
	RecordID      string          `db:"record_id"`
	Direction     string          `db:"direction"`
	DueDate       string          `db:"due_date"`
	SettledDate   *string         `db:"settled_date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	CostCenter    string          `db:"cost_center"`
	SubItem       string          `db:"sub_item"`
	Account       string          `db:"account"`
	Client        *string         `db:"client"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
