package mapping

import (
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/models"
)

// ToModelPaymentLedgerEntry converts a domain ledger entry to a model ledger entry
func ToModelPaymentLedgerEntry(d domain.PaymentLedgerEntry) models.PaymentLedgerEntry {
	return models.PaymentLedgerEntry{
		PaymentID:         d.PaymentID,
		WorkplaceID:       d.WorkplaceID,
		DocumentID:        d.DocumentID,
		PaymentNumber:     d.PaymentNumber,
		Amount:            d.Amount,
		Mode:              string(d.Mode),
		EntryStatus:       string(d.EntryStatus),
		Reference:         d.Reference,
		Notes:             d.Notes,
		ReversesPaymentID: d.ReversesPaymentID,
		PaidAt:            d.PaidAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentLedgerEntry converts a model ledger entry to a domain ledger entry
func ToDomainPaymentLedgerEntry(m models.PaymentLedgerEntry) domain.PaymentLedgerEntry {
	return domain.PaymentLedgerEntry{
		PaymentID:         m.PaymentID,
		WorkplaceID:       m.WorkplaceID,
		DocumentID:        m.DocumentID,
		PaymentNumber:     m.PaymentNumber,
		Amount:            m.Amount,
		Mode:              domain.PaymentMode(m.Mode),
		EntryStatus:       domain.EntryStatus(m.EntryStatus),
		Reference:         m.Reference,
		Notes:             m.Notes,
		ReversesPaymentID: m.ReversesPaymentID,
		PaidAt:            m.PaidAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentLedgerEntrySlice converts a slice of model ledger entries to domain entries
func ToDomainPaymentLedgerEntrySlice(ms []models.PaymentLedgerEntry) []domain.PaymentLedgerEntry {
	ds := make([]domain.PaymentLedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentLedgerEntry(m)
	}
	return ds
}
