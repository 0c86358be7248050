package dto

import (
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest carries a new payable/receivable entry.
type CreateRecordRequest struct {
	Direction     domain.Direction `json:"direction" binding:"required,oneof=PAYABLE RECEIVABLE"`
	DueDate       string           `json:"dueDate" binding:"required"`
	SettledDate   string           `json:"settledDate"`
	Description   string           `json:"description" binding:"required"`
	Amount        decimal.Decimal  `json:"amount"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        string           `json:"status" binding:"omitempty,oneof=PENDING SETTLED"`
	CostCenter    string           `json:"costCenter"`
	SubItem       string           `json:"subItem"`
	Account       string           `json:"account"`
	Client        string           `json:"client"`
}

// UpdateRecordRequest carries editable record fields. Direction is absent on
// purpose: changing direction is modeled as delete+recreate.
// Pointers distinguish omitted fields from zero values.
type UpdateRecordRequest struct {
	DueDate       *string          `json:"dueDate"`
	SettledDate   *string          `json:"settledDate"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"paymentMethod"`
	Status        *string          `json:"status" binding:"omitempty,oneof=PENDING SETTLED"`
	CostCenter    *string          `json:"costCenter"`
	SubItem       *string          `json:"subItem"`
	Account       *string          `json:"account"`
	Client        *string          `json:"client"`
}

// DeleteRecordsRequest carries the IDs of the selected rows to delete.
type DeleteRecordsRequest struct {
	RecordIDs []string `json:"recordIDs" binding:"required,min=1"`
}

// ListRecordsParams defines query parameters for listing records.
type ListRecordsParams struct {
	Direction string `form:"direction" binding:"omitempty,oneof=PAYABLE RECEIVABLE"`
	Account   string `form:"account"`
}

// RecordResponse is the API shape of a ledger record.
type RecordResponse struct {
	RecordID      string          `json:"recordID"`
	Direction     string          `json:"direction"`
	DueDate       string          `json:"dueDate"`
	SettledDate   string          `json:"settledDate,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"statusLabel"`
	CostCenter    string          `json:"costCenter"`
	SubItem       string          `json:"subItem"`
	Account       string          `json:"account"`
	Client        string          `json:"client,omitempty"`
}

// ListRecordsResponse wraps the listed records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}

// AccountsResponse lists the distinct bank/cash account tags present in the
// record set, for the account tab bar.
type AccountsResponse struct {
	Accounts []string `json:"accounts"`
}

// ToRecordResponse converts a domain record to its API shape.
func ToRecordResponse(r *domain.LedgerRecord) RecordResponse {
	return RecordResponse{
		RecordID:      r.RecordID,
		Direction:     string(r.Direction),
		DueDate:       r.DueDate,
		SettledDate:   r.SettledDate,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Status:        string(r.Status),
		StatusLabel:   StatusLabel(r.Direction, r.Status),
		CostCenter:    r.CostCenter,
		SubItem:       r.SubItem,
		Account:       r.AccountOrDefault(),
		Client:        r.Client,
	}
}

// ToListRecordsResponse converts a domain record slice to the list response.
func ToListRecordsResponse(records []domain.LedgerRecord) ListRecordsResponse {
	out := make([]RecordResponse, len(records))
	for i := range records {
		out[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Records: out}
}

// StatusLabel renders the direction-specific display label for a status.
// This is presentation only; the model keeps PENDING/SETTLED.
func StatusLabel(direction domain.Direction, status domain.RecordStatus) string {
	if status != domain.StatusSettled {
		return "PENDING"
	}
	if direction == domain.Receivable {
		return "RECEIVED"
	}
	return "PAID"
}
