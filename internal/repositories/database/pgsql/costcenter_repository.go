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

type PgxCostCenterRepository struct {
	db *pgxpool.Pool
}

func newPgxCostCenterRepository(db *pgxpool.Pool) portsrepo.CostCenterRepositoryFacade {
	return &PgxCostCenterRepository{db: db}
}

// Ensure PgxCostCenterRepository implements portsrepo.CostCenterRepositoryFacade
var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

// Helper to convert domain.CostCenter to models.CostCenter
func toModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CostCenterID:  d.CostCenterID,
		Name:          d.Name,
		Kind:          string(d.Kind),
		SubItems:      d.SubItems,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// Helper to convert models.CostCenter to domain.CostCenter
func toDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		Name:         m.Name,
		Kind:         domain.CostCenterKind(m.Kind),
		SubItems:     m.SubItems,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const costCenterColumns = `cost_center_id, name, kind, sub_items, created_at, last_updated_at`

func scanCostCenter(row pgx.Row) (models.CostCenter, error) {
	var m models.CostCenter
	err := row.Scan(
		&m.CostCenterID,
		&m.Name,
		&m.Kind,
		&m.SubItems,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxCostCenterRepository) UpsertCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := toModelCostCenter(costCenter)
	query := `
        INSERT INTO cost_centers (` + costCenterColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (cost_center_id) DO UPDATE SET
            name = EXCLUDED.name,
            kind = EXCLUDED.kind,
            sub_items = EXCLUDED.sub_items,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		m.CostCenterID,
		m.Name,
		m.Kind,
		m.SubItems,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert cost center: %w", err)
	}
	return nil
}

func (r *PgxCostCenterRepository) FindCostCenterByName(ctx context.Context, name string, kind domain.CostCenterKind) (*domain.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers
		WHERE name = $1 AND kind = $2;
	`
	m, err := scanCostCenter(r.db.QueryRow(ctx, query, name, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost center %q: %w", name, err)
	}

	costCenter := toDomainCostCenter(m)
	return &costCenter, nil
}

func (r *PgxCostCenterRepository) FindCostCenters(ctx context.Context) ([]domain.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centers: %w", err)
	}
	defer rows.Close()

	var costCenters []domain.CostCenter
	for rows.Next() {
		m, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost center row: %w", err)
		}
		costCenters = append(costCenters, toDomainCostCenter(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating cost center rows: %w", err)
	}
	return costCenters, nil
}

func (r *PgxCostCenterRepository) DeleteCostCenter(ctx context.Context, costCenterID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cost_centers WHERE cost_center_id = $1;`, costCenterID)
	if err != nil {
		return fmt.Errorf("failed to delete cost center %s: %w", costCenterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
