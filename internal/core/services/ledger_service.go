package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// ledgerService implements CRUD over payable and receivable records.
type ledgerService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	costCenterRepo portsrepo.CostCenterReader
}

// LedgerServiceOption configures the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerScreenAuthorizer sets the screen authorizer used by the service.
func WithLedgerScreenAuthorizer(authorizer portssvc.ScreenAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.ScreenAuthorizer = authorizer
	}
}

// NewLedgerService creates the ledger record service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, costCenterRepo portsrepo.CostCenterReader, opts ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:     ledgerRepo,
		costCenterRepo: costCenterRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *ledgerService) GetRecordByID(ctx context.Context, recordID string) (*domain.LedgerRecord, error) {
	record, err := s.ledgerRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *ledgerService) ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.LedgerRecord, error) {
	records, err := s.ledgerRepo.FindRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	direction := domain.Direction(params.Direction)
	account := strings.ToUpper(strings.TrimSpace(params.Account))
	filtered := make([]domain.LedgerRecord, 0, len(records))
	for _, r := range records {
		if direction != "" && r.Direction != direction {
			continue
		}
		if account != "" && account != domain.AllAccounts && r.AccountOrDefault() != account {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (s *ledgerService) ListAccounts(ctx context.Context) ([]string, error) {
	records, err := s.ledgerRepo.FindRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	seen := map[string]struct{}{domain.DefaultAccount: {}}
	for _, r := range records {
		seen[r.AccountOrDefault()] = struct{}{}
	}
	accounts := make([]string, 0, len(seen))
	for account := range seen {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts, nil
}

func (s *ledgerService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.LedgerRecord, error) {
	if !req.Direction.IsValid() {
		return nil, fmt.Errorf("invalid direction %q: %w", req.Direction, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	record := domain.LedgerRecord{
		RecordID:      uuid.NewString(),
		Direction:     req.Direction,
		DueDate:       strings.TrimSpace(req.DueDate),
		SettledDate:   strings.TrimSpace(req.SettledDate),
		Description:   strings.ToUpper(strings.TrimSpace(req.Description)),
		Amount:        req.Amount,
		PaymentMethod: strings.ToUpper(strings.TrimSpace(req.PaymentMethod)),
		Status:        domain.RecordStatus(req.Status),
		CostCenter:    strings.ToUpper(strings.TrimSpace(req.CostCenter)),
		SubItem:       strings.ToUpper(strings.TrimSpace(req.SubItem)),
		Account:       strings.ToUpper(strings.TrimSpace(req.Account)),
		Client:        strings.TrimSpace(req.Client),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if record.Account == "" {
		record.Account = domain.DefaultAccount
	}

	if err := s.normalizeDates(&record); err != nil {
		return nil, err
	}
	if err := s.checkCostCenterKind(ctx, &record); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.SaveRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	s.LogDebug(ctx, "record created",
		slog.String("record_id", record.RecordID),
		slog.String("direction", string(record.Direction)))
	return &record, nil
}

func (s *ledgerService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.LedgerRecord, error) {
	record, err := s.ledgerRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load record %s: %w", recordID, err)
	}

	if req.DueDate != nil {
		record.DueDate = strings.TrimSpace(*req.DueDate)
	}
	if req.SettledDate != nil {
		record.SettledDate = strings.TrimSpace(*req.SettledDate)
	}
	if req.Description != nil {
		record.Description = strings.ToUpper(strings.TrimSpace(*req.Description))
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount cannot be negative: %w", apperrors.ErrValidation)
		}
		record.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		record.PaymentMethod = strings.ToUpper(strings.TrimSpace(*req.PaymentMethod))
	}
	if req.Status != nil {
		record.Status = domain.RecordStatus(*req.Status)
		if record.Status == domain.StatusPending {
			record.SettledDate = ""
		}
	}
	if req.CostCenter != nil {
		record.CostCenter = strings.ToUpper(strings.TrimSpace(*req.CostCenter))
	}
	if req.SubItem != nil {
		record.SubItem = strings.ToUpper(strings.TrimSpace(*req.SubItem))
	}
	if req.Account != nil {
		record.Account = strings.ToUpper(strings.TrimSpace(*req.Account))
		if record.Account == "" {
			record.Account = domain.DefaultAccount
		}
	}
	if req.Client != nil {
		record.Client = strings.TrimSpace(*req.Client)
	}
	record.LastUpdatedAt = time.Now()

	if err := s.normalizeDates(record); err != nil {
		return nil, err
	}
	if err := s.checkCostCenterKind(ctx, record); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.UpdateRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *ledgerService) DeleteRecords(ctx context.Context, recordIDs []string) error {
	if len(recordIDs) == 0 {
		return fmt.Errorf("no record IDs given: %w", apperrors.ErrValidation)
	}
	if err := s.ledgerRepo.DeleteRecords(ctx, recordIDs); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	s.LogInfo(ctx, "records deleted", slog.Int("count", len(recordIDs)))
	return nil
}

// normalizeDates validates the due date and reconciles status with the
// settlement date. A settled record without a settlement date settles on
// its due date; a settlement date without a status marks the record settled.
func (s *ledgerService) normalizeDates(record *domain.LedgerRecord) error {
	if _, err := time.Parse(domain.DateLayout, record.DueDate); err != nil {
		return fmt.Errorf("due date %q is not %s: %w", record.DueDate, domain.DateLayout, apperrors.ErrValidation)
	}
	if record.SettledDate != "" {
		if _, err := time.Parse(domain.DateLayout, record.SettledDate); err != nil {
			return fmt.Errorf("settled date %q is not %s: %w", record.SettledDate, domain.DateLayout, apperrors.ErrValidation)
		}
	}

	switch record.Status {
	case domain.StatusSettled:
		if record.SettledDate == "" {
			record.SettledDate = record.DueDate
		}
	case domain.StatusPending:
		// Keep any settlement date entered ahead of time.
	default:
		if record.SettledDate != "" {
			record.Status = domain.StatusSettled
		} else {
			record.Status = domain.StatusPending
		}
	}
	return nil
}

// checkCostCenterKind rejects a record that names a cost center registered
// under the opposite kind. Unregistered labels pass through so imported
// categories keep working before their cost center exists.
func (s *ledgerService) checkCostCenterKind(ctx context.Context, record *domain.LedgerRecord) error {
	if record.CostCenter == "" {
		return nil
	}
	_, err := s.costCenterRepo.FindCostCenterByName(ctx, record.CostCenter, record.Direction.CostCenterKind())
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check cost center %q: %w", record.CostCenter, err)
	}

	opposite := domain.KindExpense
	if record.Direction.CostCenterKind() == domain.KindExpense {
		opposite = domain.KindIncome
	}
	_, err = s.costCenterRepo.FindCostCenterByName(ctx, record.CostCenter, opposite)
	if err == nil {
		return fmt.Errorf("cost center %q belongs to %s records: %w", record.CostCenter, opposite, apperrors.ErrDomainViolation)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check cost center %q: %w", record.CostCenter, err)
	}
	return nil
}
