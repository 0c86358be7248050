package models

import "time"

// UserAccount is the storage-layer shape of an application login.
// Password is an opaque string compared by equality.
// The permission matrix is stored as seven fixed boolean columns.
type UserAccount struct {
	Login         string    `db:"login"`
	Email         string    `db:"email"`
	Password      string    `db:"password"`
	ApprovalState string    `db:"approval_state"`
	Dashboard     bool      `db:"perm_dashboard"`
	Payables      bool      `db:"perm_payables"`
	Receivables   bool      `db:"perm_receivables"`
	CashFlow      bool      `db:"perm_cashflow"`
	CostCenters   bool      `db:"perm_costcenters"`
	Reports       bool      `db:"perm_reports"`
	UserAdmin     bool      `db:"perm_useradmin"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
