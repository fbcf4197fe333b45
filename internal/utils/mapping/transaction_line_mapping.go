package mapping

import (
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/models"
)

// ToDomainTransactionLine converts a model TransactionLine to a domain TransactionLine
func ToDomainTransactionLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		LineID:           m.LineID,
		WorkplaceID:      m.WorkplaceID,
		DocumentID:       m.DocumentID,
		CounterpartyID:   m.CounterpartyID,
		ItemID:           m.ItemID,
		Description:      m.Description,
		Amount:           m.Amount,
		CostCenterID:     m.CostCenterID,
		AssignedByRuleID: m.AssignedByRuleID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionLineSlice converts a slice of model lines to domain lines
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	ds := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionLine(m)
	}
	return ds
}
