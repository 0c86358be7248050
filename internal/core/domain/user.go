package domain

// ApprovalState is the onboarding state of a user account.
// An empty state on a stored record is legacy data from before the approval
// workflow existed and is treated as ApprovalActive.
type ApprovalState string

const (
	ApprovalPending ApprovalState = "PENDING_APPROVAL"
	ApprovalActive  ApprovalState = "ACTIVE"
)

// MasterLogin is the single account whose user-administration flag can never
// be cleared and whose record can never be deleted.
const MasterLogin = "admin"

// PermissionKey names one of the seven protected screens. Every screen maps
// 1:1 to one boolean flag on Permissions.
type PermissionKey string

const (
	PermDashboard   PermissionKey = "dashboard"
	PermPayables    PermissionKey = "payables"
	PermReceivables PermissionKey = "receivables"
	PermCashFlow    PermissionKey = "cashflow"
	PermCostCenters PermissionKey = "costcenters"
	PermReports     PermissionKey = "reports"
	PermUserAdmin   PermissionKey = "useradmin"
)

// PermissionKeys lists all screen flags in UI display order.
var PermissionKeys = []PermissionKey{
	PermDashboard,
	PermPayables,
	PermReceivables,
	PermCashFlow,
	PermCostCenters,
	PermReports,
	PermUserAdmin,
}

// Permissions is the fixed-width per-screen access matrix.
type Permissions struct {
	Dashboard   bool `json:"dashboard"`
	Payables    bool `json:"payables"`
	Receivables bool `json:"receivables"`
	CashFlow    bool `json:"cashflow"`
	CostCenters bool `json:"costcenters"`
	Reports     bool `json:"reports"`
	UserAdmin   bool `json:"useradmin"`
}

// AllPermissions returns a matrix with every screen granted.
func AllPermissions() Permissions {
	return Permissions{
		Dashboard:   true,
		Payables:    true,
		Receivables: true,
		CashFlow:    true,
		CostCenters: true,
		Reports:     true,
		UserAdmin:   true,
	}
}

// Flag reads the boolean for one screen. Unknown keys read as false.
func (p Permissions) Flag(key PermissionKey) bool {
	switch key {
	case PermDashboard:
		return p.Dashboard
	case PermPayables:
		return p.Payables
	case PermReceivables:
		return p.Receivables
	case PermCashFlow:
		return p.CashFlow
	case PermCostCenters:
		return p.CostCenters
	case PermReports:
		return p.Reports
	case PermUserAdmin:
		return p.UserAdmin
	}
	return false
}

// SetFlag writes the boolean for one screen. The second return is false for
// an unknown key, leaving the matrix untouched.
func (p *Permissions) SetFlag(key PermissionKey, value bool) bool {
	switch key {
	case PermDashboard:
		p.Dashboard = value
	case PermPayables:
		p.Payables = value
	case PermReceivables:
		p.Receivables = value
	case PermCashFlow:
		p.CashFlow = value
	case PermCostCenters:
		p.CostCenters = value
	case PermReports:
		p.Reports = value
	case PermUserAdmin:
		p.UserAdmin = value
	default:
		return false
	}
	return true
}

// UserAccount is an application login with its screen permission matrix.
type UserAccount struct {
	Login         string        `json:"login"`
	Email         string        `json:"email"`
	Password      string        `json:"-"`
	ApprovalState ApprovalState `json:"approvalState"`
	Permissions   Permissions   `json:"permissions"`
	AuditFields
}

// IsMaster reports whether this is the immutable master identity.
func (u UserAccount) IsMaster() bool {
	return u.Login == MasterLogin
}

// IsActive reports whether the account may log in. Legacy records without a
// stored approval state count as active.
func (u UserAccount) IsActive() bool {
	return u.ApprovalState != ApprovalPending
}
