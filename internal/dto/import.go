package dto

import "github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"

// ImportPreviewRequest submits raw CSV text for heuristic parsing. Nothing
// is persisted at preview time.
type ImportPreviewRequest struct {
	Direction domain.Direction `json:"direction" binding:"required,oneof=PAYABLE RECEIVABLE"`
	Content   string           `json:"content" binding:"required"`
}

// ImportPreviewResponse returns the parsed candidates together with the
// parse report so the user can review before committing.
type ImportPreviewResponse struct {
	Candidates []RecordResponse `json:"candidates"`
	Report     ImportReport     `json:"report"`
}

// ImportReport summarizes what the heuristic parser did with the file.
type ImportReport struct {
	TotalLines      int      `json:"totalLines"`
	Parsed          int      `json:"parsed"`
	Skipped         int      `json:"skipped"`
	SuspiciousRows  int      `json:"suspiciousRows"`
	Delimiter       string   `json:"delimiter"`
	HeaderDetected  bool     `json:"headerDetected"`
	ColumnsResolved []string `json:"columnsResolved"`
}

// ImportCommitRequest persists the reviewed candidate rows. The client
// sends back the candidate set, possibly hand-edited.
type ImportCommitRequest struct {
	Records []CreateRecordRequest `json:"records" binding:"required,min=1,dive"`
}

// ImportCommitResponse reports how many rows were persisted.
type ImportCommitResponse struct {
	Created int `json:"created"`
}
