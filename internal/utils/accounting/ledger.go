package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits stored for money columns.
const AmountScale = 4

// CheckAmount rejects amounts that are not positive or that carry more fractional digits
// than the ledger stores.
func CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	return nil
}

// SumCompleted returns the paid amount of a document: the signed sum of its COMPLETED ledger
// entries. Pending and failed entries never count. The result is always recomputed from the
// entries passed in; no running total is kept.
func SumCompleted(entries []domain.PaymentLedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.EntryStatus != domain.EntryCompleted {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return sum
}

// DeriveStatus maps a total and a paid amount to the payable status of a document.
//
//	paid >= total -> PAID
//	paid >  0     -> PARTIALLY_PAID
//	otherwise     -> POSTED
func DeriveStatus(total, paid decimal.Decimal) domain.DocumentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return domain.StatusPaid
	case paid.IsPositive():
		return domain.StatusPartiallyPaid
	default:
		return domain.StatusPosted
	}
}

// Balance returns the outstanding amount, never below zero.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ValidatePayment checks a proposed payment amount against the current paid amount.
// It returns ErrNonPositiveAmount, ErrAmountPrecision, ErrFullyPaid or ErrExceedsBalance.
func ValidatePayment(total, paid, amount decimal.Decimal) error {
	if err := CheckAmount(amount); err != nil {
		return err
	}
	if paid.GreaterThanOrEqual(total) {
		return ErrFullyPaid
	}
	if amount.GreaterThan(total.Sub(paid)) {
		return ErrExceedsBalance
	}
	return nil
}

// FormatPaymentNumber renders {PREFIX}-{YY}{MM}-{seq} with seq zero-padded to at least four
// digits, e.g. PAY-IN-2403-0007.
func FormatPaymentNumber(prefix string, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("0601"), seq)
}

// PeriodKey returns the calendar-month bucket used for payment number sequences.
func PeriodKey(at time.Time) string {
	return at.Format("0601")
}
