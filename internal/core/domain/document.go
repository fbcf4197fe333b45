package domain

import "github.com/shopspring/decimal"

// DocumentKind distinguishes sales invoices from purchase bills. Both are structurally identical.
type DocumentKind string

const (
	Invoice DocumentKind = "INVOICE"
	Bill    DocumentKind = "BILL"
)

// DocumentStatus is the lifecycle status of a financial document.
// POSTED, PARTIALLY_PAID and PAID are derived from the ledger; DRAFT and CANCELLED are managed
// by the surrounding document lifecycle.
type DocumentStatus string

const (
	StatusDraft         DocumentStatus = "DRAFT"
	StatusPosted        DocumentStatus = "POSTED"
	StatusPartiallyPaid DocumentStatus = "PARTIALLY_PAID"
	StatusPaid          DocumentStatus = "PAID"
	StatusCancelled     DocumentStatus = "CANCELLED"
)

// IsPayable reports whether payments may be recorded against a document in this status.
func (s DocumentStatus) IsPayable() bool {
	switch s {
	case StatusPosted, StatusPartiallyPaid, StatusPaid:
		return true
	}
	return false
}

// FinancialDocument is an invoice or bill. PaidAmount and Status are cached projections of the
// payment ledger and must never be set independently of it.
type FinancialDocument struct {
	DocumentID     string          `json:"documentID"`
	WorkplaceID    string          `json:"workplaceID"`
	Kind           DocumentKind    `json:"kind"`
	DocumentNumber string          `json:"documentNumber"`
	CounterpartyID string          `json:"counterpartyID"`
	TotalAmount    decimal.Decimal `json:"totalAmount"` // Immutable once posted
	PaidAmount     decimal.Decimal `json:"paidAmount"`  // Derived
	Status         DocumentStatus  `json:"status"`      // Derived while payable
	IsArchived     bool            `json:"isArchived"`
	Version        int64           `json:"version"` // Bumped on every derived-field update
	AuditFields
}

// DocumentBalance is a just-in-time view of a document's payable position.
type DocumentBalance struct {
	DocumentID string          `json:"documentID"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"paid"`
	Balance    decimal.Decimal `json:"balance"`
	Status     DocumentStatus  `json:"status"`
}
