package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentLedgerEntry is the row shape of the payment_ledger table.
type PaymentLedgerEntry struct {
	PaymentID         string          `db:"payment_id"`
	WorkplaceID       string          `db:"workplace_id"`
	DocumentID        string          `db:"document_id"`
	PaymentNumber     string          `db:"payment_number"`
	Amount            decimal.Decimal `db:"amount"`
	Mode              string          `db:"mode"`
	EntryStatus       string          `db:"entry_status"`
	Reference         string          `db:"reference"`
	Notes             string          `db:"notes"`
	ReversesPaymentID *string         `db:"reverses_payment_id"`
	PaidAt            time.Time       `db:"paid_at"`
	AuditFields
}
