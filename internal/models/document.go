package models

import "github.com/shopspring/decimal"

// FinancialDocument is the row shape of the financial_documents table.
type FinancialDocument struct {
	DocumentID     string          `db:"document_id"`
	WorkplaceID    string          `db:"workplace_id"`
	Kind           string          `db:"kind"`
	DocumentNumber string          `db:"document_number"`
	CounterpartyID string          `db:"counterparty_id"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	Status         string          `db:"status"`
	IsArchived     bool            `db:"is_archived"`
	Version        int64           `db:"version"`
	AuditFields
}
