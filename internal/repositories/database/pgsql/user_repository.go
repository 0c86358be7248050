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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.UserAccount to models.UserAccount
func toModelUser(d domain.UserAccount) models.UserAccount {
	return models.UserAccount{
		Login:         d.Login,
		Email:         d.Email,
		Password:      d.Password,
		ApprovalState: string(d.ApprovalState),
		Dashboard:     d.Permissions.Dashboard,
		Payables:      d.Permissions.Payables,
		Receivables:   d.Permissions.Receivables,
		CashFlow:      d.Permissions.CashFlow,
		CostCenters:   d.Permissions.CostCenters,
		Reports:       d.Permissions.Reports,
		UserAdmin:     d.Permissions.UserAdmin,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// Helper to convert models.UserAccount to domain.UserAccount
func toDomainUser(m models.UserAccount) domain.UserAccount {
	return domain.UserAccount{
		Login:         m.Login,
		Email:         m.Email,
		Password:      m.Password,
		ApprovalState: domain.ApprovalState(m.ApprovalState),
		Permissions: domain.Permissions{
			Dashboard:   m.Dashboard,
			Payables:    m.Payables,
			Receivables: m.Receivables,
			CashFlow:    m.CashFlow,
			CostCenters: m.CostCenters,
			Reports:     m.Reports,
			UserAdmin:   m.UserAdmin,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const userColumns = `login, email, password, approval_state,
		perm_dashboard, perm_payables, perm_receivables, perm_cashflow,
		perm_costcenters, perm_reports, perm_useradmin,
		created_at, last_updated_at`

func scanUser(row pgx.Row) (models.UserAccount, error) {
	var m models.UserAccount
	err := row.Scan(
		&m.Login,
		&m.Email,
		&m.Password,
		&m.ApprovalState,
		&m.Dashboard,
		&m.Payables,
		&m.Receivables,
		&m.CashFlow,
		&m.CostCenters,
		&m.Reports,
		&m.UserAdmin,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.UserAccount) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.Login,
		m.Email,
		m.Password,
		m.ApprovalState,
		m.Dashboard,
		m.Payables,
		m.Receivables,
		m.CashFlow,
		m.CostCenters,
		m.Reports,
		m.UserAdmin,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpsertUser(ctx context.Context, user domain.UserAccount) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (login) DO UPDATE SET
            email = EXCLUDED.email,
            password = EXCLUDED.password,
            approval_state = EXCLUDED.approval_state,
            perm_dashboard = EXCLUDED.perm_dashboard,
            perm_payables = EXCLUDED.perm_payables,
            perm_receivables = EXCLUDED.perm_receivables,
            perm_cashflow = EXCLUDED.perm_cashflow,
            perm_costcenters = EXCLUDED.perm_costcenters,
            perm_reports = EXCLUDED.perm_reports,
            perm_useradmin = EXCLUDED.perm_useradmin,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		m.Login,
		m.Email,
		m.Password,
		m.ApprovalState,
		m.Dashboard,
		m.Payables,
		m.Receivables,
		m.CashFlow,
		m.CostCenters,
		m.Reports,
		m.UserAdmin,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByLogin(ctx context.Context, login string) (*domain.UserAccount, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE login = $1;
	`
	m, err := scanUser(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %q: %w", login, err)
	}

	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.UserAccount, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY login;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserAccount
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating user rows: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, login string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE login = $1;`, login)
	if err != nil {
		return fmt.Errorf("failed to delete user %q: %w", login, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
