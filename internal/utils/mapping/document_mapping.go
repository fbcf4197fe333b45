package mapping

import (
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/models"
)

// ToDomainFinancialDocument converts a model FinancialDocument to a domain FinancialDocument
func ToDomainFinancialDocument(m models.FinancialDocument) domain.FinancialDocument {
	return domain.FinancialDocument{
		DocumentID:     m.DocumentID,
		WorkplaceID:    m.WorkplaceID,
		Kind:           domain.DocumentKind(m.Kind),
		DocumentNumber: m.DocumentNumber,
		CounterpartyID: m.CounterpartyID,
		TotalAmount:    m.TotalAmount,
		PaidAmount:     m.PaidAmount,
		Status:         domain.DocumentStatus(m.Status),
		IsArchived:     m.IsArchived,
		Version:        m.Version,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialDocumentSlice converts a slice of model documents to domain documents
func ToDomainFinancialDocumentSlice(ms []models.FinancialDocument) []domain.FinancialDocument {
	ds := make([]domain.FinancialDocument, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialDocument(m)
	}
	return ds
}
