package domain

// CostCenterKind splits the cost center taxonomy into its two halves.
type CostCenterKind string

const (
	KindIncome  CostCenterKind = "INCOME"
	KindExpense CostCenterKind = "EXPENSE"
)

// IsValid reports whether k is one of the two known kinds.
func (k CostCenterKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// CostCenter is a named classification bucket with declared sub-items.
// Names are unique within a kind and displayed uppercase; sub-items keep
// insertion order and are unique case-insensitively.
type CostCenter struct {
	CostCenterID string         `json:"costCenterID"`
	Name         string         `json:"name"`
	Kind         CostCenterKind `json:"kind"`
	SubItems     []string       `json:"subItems"`
	AuditFields
}
