package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portsrepo "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/repositories"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

// costCenterService manages income and expense categories and their
// sub-item breakdowns.
type costCenterService struct {
	BaseService
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

// NewCostCenterService creates the cost center service.
func NewCostCenterService(costCenterRepo portsrepo.CostCenterRepositoryFacade) portssvc.CostCenterSvcFacade {
	return &costCenterService{costCenterRepo: costCenterRepo}
}

func (s *costCenterService) ListCostCenters(ctx context.Context) ([]domain.CostCenter, error) {
	costCenters, err := s.costCenterRepo.FindCostCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	return costCenters, nil
}

func (s *costCenterService) CreateCostCenter(ctx context.Context, req dto.UpsertCostCenterRequest) (*domain.CostCenter, error) {
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("invalid cost center kind %q: %w", req.Kind, apperrors.ErrValidation)
	}
	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, fmt.Errorf("cost center name is required: %w", apperrors.ErrValidation)
	}

	_, err := s.costCenterRepo.FindCostCenterByName(ctx, name, req.Kind)
	if err == nil {
		return nil, fmt.Errorf("cost center %q already exists: %w", name, apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check cost center %q: %w", name, err)
	}

	subItems, err := normalizeSubItems(req.SubItems)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	costCenter := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Name:         name,
		Kind:         req.Kind,
		SubItems:     subItems,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.costCenterRepo.UpsertCostCenter(ctx, costCenter); err != nil {
		return nil, fmt.Errorf("failed to create cost center: %w", err)
	}
	s.LogInfo(ctx, "cost center created",
		slog.String("name", name),
		slog.String("kind", string(req.Kind)))
	return &costCenter, nil
}

func (s *costCenterService) AddSubItem(ctx context.Context, costCenterID string, subItem string) (*domain.CostCenter, error) {
	costCenter, err := s.findByID(ctx, costCenterID)
	if err != nil {
		return nil, err
	}

	name := strings.ToUpper(strings.TrimSpace(subItem))
	if name == "" {
		return nil, fmt.Errorf("sub-item name is required: %w", apperrors.ErrValidation)
	}
	for _, existing := range costCenter.SubItems {
		if strings.EqualFold(existing, name) {
			return nil, fmt.Errorf("sub-item %q already exists: %w", name, apperrors.ErrValidation)
		}
	}

	costCenter.SubItems = append(costCenter.SubItems, name)
	costCenter.LastUpdatedAt = time.Now()

	if err := s.costCenterRepo.UpsertCostCenter(ctx, *costCenter); err != nil {
		return nil, fmt.Errorf("failed to add sub-item to %q: %w", costCenter.Name, err)
	}
	return costCenter, nil
}

func (s *costCenterService) DeleteCostCenter(ctx context.Context, costCenterID string) error {
	if _, err := s.findByID(ctx, costCenterID); err != nil {
		return err
	}
	if err := s.costCenterRepo.DeleteCostCenter(ctx, costCenterID); err != nil {
		return fmt.Errorf("failed to delete cost center %s: %w", costCenterID, err)
	}
	s.LogInfo(ctx, "cost center deleted", slog.String("cost_center_id", costCenterID))
	return nil
}

func (s *costCenterService) findByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	costCenters, err := s.costCenterRepo.FindCostCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost centers: %w", err)
	}
	for i := range costCenters {
		if costCenters[i].CostCenterID == costCenterID {
			return &costCenters[i], nil
		}
	}
	return nil, fmt.Errorf("cost center %s: %w", costCenterID, apperrors.ErrNotFound)
}

func normalizeSubItems(subItems []string) ([]string, error) {
	out := make([]string, 0, len(subItems))
	for _, raw := range subItems {
		name := strings.ToUpper(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		for _, existing := range out {
			if strings.EqualFold(existing, name) {
				return nil, fmt.Errorf("duplicate sub-item %q: %w", name, apperrors.ErrValidation)
			}
		}
		out = append(out, name)
	}
	return out, nil
}
