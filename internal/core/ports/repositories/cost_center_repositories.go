package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// CostCenterReader defines read operations for cost centers
type CostCenterReader interface {
	FindCostCenterByID(ctx context.Context, workplaceID, costCenterID string) (*domain.CostCenter, error)
	ListCostCenters(ctx context.Context, workplaceID string, includeArchived bool) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost centers
type CostCenterWriter interface {
	// SaveCostCenter inserts a cost center. A duplicate code returns ErrDuplicate.
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error
	ArchiveCostCenter(ctx context.Context, workplaceID, costCenterID, userID string, at time.Time) error
}

// CostCenterRepositoryFacade combines all cost-center repository interfaces
type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
