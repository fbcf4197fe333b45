package mapping

import (
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/models"
)

// ToModelAssignmentRule converts a domain AssignmentRule to a model AssignmentRule
func ToModelAssignmentRule(d domain.AssignmentRule) models.AssignmentRule {
	return models.AssignmentRule{
		RuleID:            d.RuleID,
		WorkplaceID:       d.WorkplaceID,
		Name:              d.Name,
		CounterpartyTagID: d.CounterpartyTagID,
		CounterpartyID:    d.CounterpartyID,
		ItemCategoryID:    d.ItemCategoryID,
		ItemID:            d.ItemID,
		CostCenterID:      d.CostCenterID,
		Specificity:       d.Specificity,
		Priority:          d.Priority,
		IsArchived:        d.IsArchived,
		ArchivedAt:        d.ArchivedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignmentRule converts a model AssignmentRule to a domain AssignmentRule
func ToDomainAssignmentRule(m models.AssignmentRule) domain.AssignmentRule {
	return domain.AssignmentRule{
		RuleID:            m.RuleID,
		WorkplaceID:       m.WorkplaceID,
		Name:              m.Name,
		CounterpartyTagID: m.CounterpartyTagID,
		CounterpartyID:    m.CounterpartyID,
		ItemCategoryID:    m.ItemCategoryID,
		ItemID:            m.ItemID,
		CostCenterID:      m.CostCenterID,
		Specificity:       m.Specificity,
		Priority:          m.Priority,
		IsArchived:        m.IsArchived,
		ArchivedAt:        m.ArchivedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssignmentRuleSlice converts a slice of model AssignmentRules to domain AssignmentRules
func ToDomainAssignmentRuleSlice(ms []models.AssignmentRule) []domain.AssignmentRule {
	ds := make([]domain.AssignmentRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignmentRule(m)
	}
	return ds
}
