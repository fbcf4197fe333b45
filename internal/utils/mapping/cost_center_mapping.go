package mapping

import (
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/models"
)

// ToModelCostCenter converts a domain CostCenter to a model CostCenter
func ToModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CostCenterID: d.CostCenterID,
		WorkplaceID:  d.WorkplaceID,
		Code:         d.Code,
		Name:         d.Name,
		IsArchived:   d.IsArchived,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostCenter converts a model CostCenter to a domain CostCenter
func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		WorkplaceID:  m.WorkplaceID,
		Code:         m.Code,
		Name:         m.Name,
		IsArchived:   m.IsArchived,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCostCenterSlice converts a slice of model CostCenters to a slice of domain CostCenters
func ToDomainCostCenterSlice(ms []models.CostCenter) []domain.CostCenter {
	ds := make([]domain.CostCenter, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCostCenter(m)
	}
	return ds
}
