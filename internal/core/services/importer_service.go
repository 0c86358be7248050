package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// Defaults applied when an imported cell is empty or its column was never
// resolved from the header.
const (
	importedDescription   = "IMPORTED CSV"
	importedPaymentMethod = "PIX"
	importedCostCenter    = "OTHERS"
)

// minImportCells is the smallest row the parser accepts. Shorter rows are
// counted as skipped.
const minImportCells = 5

// columnMap holds the resolved header position of each field, -1 when the
// header never named it.
type columnMap struct {
	dueDate       int
	description   int
	amount        int
	status        int
	paymentMethod int
	costCenter    int
	subItem       int
	account       int
}

// headerHints maps each field to the lowercase substrings that claim a
// header column for it. Scanning goes left to right, first match wins.
var headerHints = []struct {
	field      string
	substrings []string
	assign     func(*columnMap, int)
}{
	{"dueDate", []string{"venc", "data", "due"}, func(c *columnMap, i int) { c.dueDate = i }},
	{"description", []string{"desc", "hist"}, func(c *columnMap, i int) { c.description = i }},
	{"amount", []string{"valor", "amount"}, func(c *columnMap, i int) { c.amount = i }},
	{"status", []string{"status", "situa"}, func(c *columnMap, i int) { c.status = i }},
	{"paymentMethod", []string{"forma", "payment"}, func(c *columnMap, i int) { c.paymentMethod = i }},
	{"costCenter", []string{"centro", "cost"}, func(c *columnMap, i int) { c.costCenter = i }},
	{"subItem", []string{"sub"}, func(c *columnMap, i int) { c.subItem = i }},
	{"account", []string{"conta", "account", "banco"}, func(c *columnMap, i int) { c.account = i }},
}

// importerService turns raw bank/spreadsheet CSV exports into ledger
// records. Parsing is heuristic and never fails on a malformed row; bad
// rows are skipped or flagged so the user can review before committing.
type importerService struct {
	BaseService
	ledgerSvc portssvc.LedgerWriterSvc
}

// NewImporterService creates the CSV import service.
func NewImporterService(ledgerSvc portssvc.LedgerWriterSvc) portssvc.ImporterSvc {
	return &importerService{ledgerSvc: ledgerSvc}
}

func (s *importerService) PreviewImport(ctx context.Context, req dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error) {
	if !req.Direction.IsValid() {
		return nil, fmt.Errorf("invalid direction %q: %w", req.Direction, apperrors.ErrValidation)
	}

	preview, err := parseCandidates(req.Content, req.Direction)
	if err != nil {
		return nil, err
	}

	candidates := make([]dto.RecordResponse, len(preview.candidates))
	for i := range preview.candidates {
		candidates[i] = dto.ToRecordResponse(&preview.candidates[i])
	}
	s.LogInfo(ctx, "import previewed",
		slog.Int("parsed", len(candidates)),
		slog.Int("skipped", preview.skipped),
		slog.Int("suspicious", preview.suspicious))
	return &dto.ImportPreviewResponse{
		Candidates: candidates,
		Report: dto.ImportReport{
			TotalLines:      preview.totalLines,
			Parsed:          len(candidates),
			Skipped:         preview.skipped,
			SuspiciousRows:  preview.suspicious,
			Delimiter:       preview.delimiter,
			HeaderDetected:  true,
			ColumnsResolved: preview.resolved,
		},
	}, nil
}

func (s *importerService) CommitImport(ctx context.Context, req dto.ImportCommitRequest) (*dto.ImportCommitResponse, error) {
	created := 0
	for i, record := range req.Records {
		if _, err := s.ledgerSvc.CreateRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to commit import row %d: %w", i+1, err)
		}
		created++
	}
	s.LogInfo(ctx, "import committed", slog.Int("created", created))
	return &dto.ImportCommitResponse{Created: created}, nil
}

type importPreview struct {
	candidates []domain.LedgerRecord
	totalLines int
	skipped    int
	suspicious int
	delimiter  string
	resolved   []string
}

// parseCandidates is the pure heuristic core of the importer. It never
// errors on malformed rows; only an input without a header line fails.
func parseCandidates(raw string, direction domain.Direction) (*importPreview, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty import content: %w", apperrors.ErrValidation)
	}

	header := lines[0]
	delimiter := ","
	if strings.Contains(header, ";") {
		delimiter = ";"
	}

	columns, resolved := resolveColumns(strings.Split(header, delimiter))
	preview := &importPreview{
		totalLines: len(lines),
		delimiter:  delimiter,
		resolved:   resolved,
	}

	for _, line := range lines[1:] {
		cells := strings.Split(line, delimiter)
		if len(cells) < minImportCells {
			preview.skipped++
			continue
		}
		record, suspicious := buildCandidate(cells, columns, direction)
		if suspicious {
			preview.suspicious++
		}
		preview.candidates = append(preview.candidates, record)
	}
	return preview, nil
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// resolveColumns claims one header column per field, scanning left to
// right. A column taken by an earlier field is not reconsidered.
func resolveColumns(headerCells []string) (columnMap, []string) {
	columns := columnMap{
		dueDate: -1, description: -1, amount: -1, status: -1,
		paymentMethod: -1, costCenter: -1, subItem: -1, account: -1,
	}
	claimed := make(map[int]bool, len(headerCells))
	var resolved []string

	for _, hint := range headerHints {
		for i, cell := range headerCells {
			if claimed[i] {
				continue
			}
			lower := strings.ToLower(strings.TrimSpace(cell))
			if containsAny(lower, hint.substrings) {
				hint.assign(&columns, i)
				claimed[i] = true
				resolved = append(resolved, hint.field)
				break
			}
		}
	}
	return columns, resolved
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func buildCandidate(cells []string, columns columnMap, direction domain.Direction) (domain.LedgerRecord, bool) {
	suspicious := false

	amount, ok := parseImportAmount(cellAt(cells, columns.amount))
	if !ok || amount.IsZero() {
		suspicious = true
	}

	description := strings.ToUpper(cellAt(cells, columns.description))
	if description == "" {
		description = importedDescription
	}
	paymentMethod := strings.ToUpper(cellAt(cells, columns.paymentMethod))
	if paymentMethod == "" {
		paymentMethod = importedPaymentMethod
	}
	costCenter := strings.ToUpper(cellAt(cells, columns.costCenter))
	if costCenter == "" {
		costCenter = importedCostCenter
	}
	account := strings.ToUpper(cellAt(cells, columns.account))
	if account == "" {
		account = domain.DefaultAccount
	}

	record := domain.LedgerRecord{
		RecordID:      uuid.NewString(),
		Direction:     direction,
		DueDate:       normalizeImportDate(cellAt(cells, columns.dueDate)),
		Description:   description,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Status:        domain.StatusPending,
		CostCenter:    costCenter,
		SubItem:       strings.ToUpper(cellAt(cells, columns.subItem)),
		Account:       account,
	}

	status := strings.ToUpper(cellAt(cells, columns.status))
	if strings.Contains(status, "PAGO") || strings.Contains(status, "RECEB") {
		record.Status = domain.StatusSettled
		record.SettledDate = record.DueDate
	}
	return record, suspicious
}

func cellAt(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[index])
}

// normalizeImportDate rewrites DD/MM/YYYY (and DD/MM/YY) to YYYY-MM-DD.
// Anything without a slash passes through untouched.
func normalizeImportDate(token string) string {
	if !strings.Contains(token, "/") {
		return token
	}
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return token
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if len(year) == 2 {
		year = "20" + year
	}
	return year + "-" + month + "-" + day
}

// parseImportAmount reads pt-BR number formatting: dot thousands separators
// dropped, decimal comma. Currency symbols are not stripped; such tokens
// fail to parse and the row is flagged suspicious. Negative values pass
// through and are caught by record validation at commit.
func parseImportAmount(token string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(token, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
