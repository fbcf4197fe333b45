package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/google/uuid"
)

type costCenterService struct {
	BaseService
	repo portsrepo.CostCenterRepositoryFacade
}

// NewCostCenterService creates the cost center service.
func NewCostCenterService(repo portsrepo.CostCenterRepositoryFacade) portssvc.CostCenterSvcFacade {
	return &costCenterService{repo: repo}
}

var _ portssvc.CostCenterSvcFacade = (*costCenterService)(nil)

func (s *costCenterService) CreateCostCenter(ctx context.Context, workplaceID string, req dto.CreateCostCenterRequest, userID string) (*domain.CostCenter, error) {
	now := time.Now()
	cc := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		WorkplaceID:  workplaceID,
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:         strings.TrimSpace(req.Name),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.repo.SaveCostCenter(ctx, cc); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save cost center",
				slog.String("workplace_id", workplaceID),
				slog.String("code", cc.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cost center created",
		slog.String("workplace_id", workplaceID),
		slog.String("cost_center_id", cc.CostCenterID),
		slog.String("code", cc.Code))
	return &cc, nil
}

func (s *costCenterService) GetCostCenter(ctx context.Context, workplaceID, costCenterID string) (*domain.CostCenter, error) {
	cc, err := s.repo.FindCostCenterByID(ctx, workplaceID, costCenterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cost center", slog.String("cost_center_id", costCenterID))
		}
		return nil, err
	}
	return cc, nil
}

func (s *costCenterService) ListCostCenters(ctx context.Context, workplaceID string, params dto.ListCostCentersParams) ([]domain.CostCenter, error) {
	ccs, err := s.repo.ListCostCenters(ctx, workplaceID, params.IncludeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost centers", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	if ccs == nil {
		return []domain.CostCenter{}, nil
	}
	return ccs, nil
}

// ArchiveCostCenter archives a cost center. Archiving twice succeeds without a write.
func (s *costCenterService) ArchiveCostCenter(ctx context.Context, workplaceID, costCenterID, userID string) error {
	cc, err := s.GetCostCenter(ctx, workplaceID, costCenterID)
	if err != nil {
		return err
	}
	if cc.IsArchived {
		return nil
	}

	if err := s.repo.ArchiveCostCenter(ctx, workplaceID, costCenterID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to archive cost center", slog.String("cost_center_id", costCenterID))
		}
		return err
	}

	s.LogInfo(ctx, "Cost center archived",
		slog.String("workplace_id", workplaceID),
		slog.String("cost_center_id", costCenterID))
	return nil
}
