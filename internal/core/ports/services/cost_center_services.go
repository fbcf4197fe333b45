package services

import (
	"context"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/dto"
)

// CostCenterReaderSvc defines read operations for cost centers
type CostCenterReaderSvc interface {
	GetCostCenter(ctx context.Context, workplaceID, costCenterID string) (*domain.CostCenter, error)
	ListCostCenters(ctx context.Context, workplaceID string, params dto.ListCostCentersParams) ([]domain.CostCenter, error)
}

// CostCenterWriterSvc defines write operations for cost centers
type CostCenterWriterSvc interface {
	CreateCostCenter(ctx context.Context, workplaceID string, req dto.CreateCostCenterRequest, userID string) (*domain.CostCenter, error)

	// ArchiveCostCenter archives a cost center. Rules already pointing at it keep working;
	// new rules can no longer target it.
	ArchiveCostCenter(ctx context.Context, workplaceID, costCenterID, userID string) error
}

// CostCenterSvcFacade combines all cost-center service interfaces
type CostCenterSvcFacade interface {
	CostCenterReaderSvc
	CostCenterWriterSvc
}
