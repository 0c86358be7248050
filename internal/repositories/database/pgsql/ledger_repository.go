package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
	"github.com/lucasmbp/fluxo_caixa_app/internal/models"
)

type PgxLedgerRepository struct {
	db *pgxpool.Pool
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{db: db}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// Helper to convert domain.LedgerRecord to models.LedgerRecord
func toModelRecord(d domain.LedgerRecord) models.LedgerRecord {
	m := models.LedgerRecord{
		RecordID:      d.RecordID,
		Direction:     string(d.Direction),
		DueDate:       d.DueDate,
		Description:   d.Description,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Status:        string(d.Status),
		CostCenter:    d.CostCenter,
		SubItem:       d.SubItem,
		Account:       d.Account,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
	if d.SettledDate != "" {
		m.SettledDate = &d.SettledDate
	}
	if d.Client != "" {
		m.Client = &d.Client
	}
	return m
}

// Helper to convert models.LedgerRecord to domain.LedgerRecord
func toDomainRecord(m models.LedgerRecord) domain.LedgerRecord {
	d := domain.LedgerRecord{
		RecordID:      m.RecordID,
		Direction:     domain.Direction(m.Direction),
		DueDate:       m.DueDate,
		Description:   m.Description,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		Status:        domain.RecordStatus(m.Status),
		CostCenter:    m.CostCenter,
		SubItem:       m.SubItem,
		Account:       m.Account,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.SettledDate != nil {
		d.SettledDate = *m.SettledDate
	}
	if m.Client != nil {
		d.Client = *m.Client
	}
	return d
}

const recordColumns = `record_id, direction, due_date, settled_date, description,
		amount, payment_method, status, cost_center, sub_item, account, client,
		created_at, last_updated_at`

func scanRecord(row pgx.Row) (models.LedgerRecord, error) {
	var m models.LedgerRecord
	err := row.Scan(
		&m.RecordID,
		&m.Direction,
		&m.DueDate,
		&m.SettledDate,
		&m.Description,
		&m.Amount,
		&m.PaymentMethod,
		&m.Status,
		&m.CostCenter,
		&m.SubItem,
		&m.Account,
		&m.Client,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxLedgerRepository) SaveRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := toModelRecord(record)
	query := `
        INSERT INTO ledger_records (` + recordColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		m.RecordID,
		m.Direction,
		m.DueDate,
		m.SettledDate,
		m.Description,
		m.Amount,
		m.PaymentMethod,
		m.Status,
		m.CostCenter,
		m.SubItem,
		m.Account,
		m.Client,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) UpdateRecord(ctx context.Context, record domain.LedgerRecord) error {
	m := toModelRecord(record)
	query := `
        UPDATE ledger_records SET
            due_date = $2,
            settled_date = $3,
            description = $4,
            amount = $5,
            payment_method = $6,
            status = $7,
            cost_center = $8,
            sub_item = $9,
            account = $10,
            client = $11,
            last_updated_at = $12
        WHERE record_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.RecordID,
		m.DueDate,
		m.SettledDate,
		m.Description,
		m.Amount,
		m.PaymentMethod,
		m.Status,
		m.CostCenter,
		m.SubItem,
		m.Account,
		m.Client,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update record %s: %w", record.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.LedgerRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM ledger_records
		WHERE record_id = $1;
	`
	m, err := scanRecord(r.db.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record %s: %w", recordID, err)
	}

	record := toDomainRecord(m)
	return &record, nil
}

func (r *PgxLedgerRepository) FindRecords(ctx context.Context) ([]domain.LedgerRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM ledger_records
		ORDER BY due_date DESC, created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []domain.LedgerRecord
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, toDomainRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating record rows: %w", err)
	}
	return records, nil
}

func (r *PgxLedgerRepository) DeleteRecords(ctx context.Context, recordIDs []string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ledger_records WHERE record_id = ANY($1);`, recordIDs)
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
