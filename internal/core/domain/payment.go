package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is the instrument used for a payment.
type PaymentMode string

const (
	ModeCash         PaymentMode = "CASH"
	ModeBankTransfer PaymentMode = "BANK_TRANSFER"
	ModeCheque       PaymentMode = "CHEQUE"
	ModeCard         PaymentMode = "CARD"
	ModeUPI          PaymentMode = "UPI"
	ModeOther        PaymentMode = "OTHER"
)

// IsValid reports whether the mode is one of the known instruments.
func (m PaymentMode) IsValid() bool {
	switch m {
	case ModeCash, ModeBankTransfer, ModeCheque, ModeCard, ModeUPI, ModeOther:
		return true
	}
	return false
}

// EntryStatus is the status of a ledger entry. Only COMPLETED entries count toward the paid amount.
type EntryStatus string

const (
	EntryPending   EntryStatus = "PENDING"
	EntryCompleted EntryStatus = "COMPLETED"
	EntryFailed    EntryStatus = "FAILED"
)

// PaymentLedgerEntry is an append-only record of money applied to a financial document.
// Amount is signed: ordinary payments are positive, reversals are negative and point at the
// entry they compensate through ReversesPaymentID.
type PaymentLedgerEntry struct {
	PaymentID         string          `json:"paymentID"`
	WorkplaceID       string          `json:"workplaceID"`
	DocumentID        string          `json:"documentID"`
	PaymentNumber     string          `json:"paymentNumber"`
	Amount            decimal.Decimal `json:"amount"`
	Mode              PaymentMode     `json:"mode"`
	EntryStatus       EntryStatus     `json:"entryStatus"`
	Reference         string          `json:"reference"`
	Notes             string          `json:"notes"`
	ReversesPaymentID *string         `json:"reversesPaymentID,omitempty"`
	PaidAt            time.Time       `json:"paidAt"`
	AuditFields
}

// IsReversal reports whether the entry compensates an earlier payment.
func (e PaymentLedgerEntry) IsReversal() bool {
	return e.ReversesPaymentID != nil
}

// PaymentResult is returned by the payment processor. DerivedFieldsStale is set when the
// ledger entry was written but the document's cached fields could not be updated.
type PaymentResult struct {
	Payment            PaymentLedgerEntry `json:"payment"`
	PaidAmount         decimal.Decimal    `json:"paidAmount"`
	Balance            decimal.Decimal    `json:"balance"`
	Status             DocumentStatus     `json:"status"`
	DerivedFieldsStale bool               `json:"derivedFieldsStale"`
}

// ReconcileReport summarises a reconciliation pass over cached document fields.
type ReconcileReport struct {
	Scanned  int      `json:"scanned"`
	Repaired int      `json:"repaired"`
	Failed   int      `json:"failed"`
	Repairs  []string `json:"repairs"` // Document IDs whose cached fields were rewritten
}
