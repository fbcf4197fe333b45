package services

import (
	"errors"
	"fmt"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/utils/accounting"
)

// Payment validation errors. All wrap apperrors.ErrValidation and are returned before any write.
var (
	ErrInvalidPaymentAmount  = fmt.Errorf("%w: %w", apperrors.ErrValidation, accounting.ErrNonPositiveAmount)
	ErrAmountPrecision       = fmt.Errorf("%w: %w", apperrors.ErrValidation, accounting.ErrAmountPrecision)
	ErrInvalidPaymentMode    = fmt.Errorf("%w: unknown payment mode", apperrors.ErrValidation)
	ErrPaymentExceedsBalance = fmt.Errorf("%w: %w", apperrors.ErrValidation, accounting.ErrExceedsBalance)
	ErrDocumentFullyPaid     = fmt.Errorf("%w: %w", apperrors.ErrValidation, accounting.ErrFullyPaid)
	ErrDocumentNotPayable    = fmt.Errorf("%w: document is not in a payable state", apperrors.ErrValidation)
	ErrCannotReverseReversal = fmt.Errorf("%w: a reversal entry cannot itself be reversed", apperrors.ErrValidation)
	ErrPaymentNotReversible  = fmt.Errorf("%w: only completed payments can be reversed", apperrors.ErrValidation)
)

// ErrPaymentAlreadyReversed is returned when a reversal already points at the payment.
var ErrPaymentAlreadyReversed = fmt.Errorf("%w: payment has already been reversed", apperrors.ErrConflict)

// Rule definition errors.
var (
	ErrInvalidRule          = fmt.Errorf("%w: invalid assignment rule", apperrors.ErrValidation)
	ErrCostCenterUnusable   = fmt.Errorf("%w: cost center does not exist or is archived", apperrors.ErrValidation)
	ErrArchivedRuleReadOnly = fmt.Errorf("%w: archived rules cannot be modified", apperrors.ErrConflict)
)

// ErrDerivedFieldsStale marks a payment whose ledger entry was committed while the document's
// paid amount and status could not be refreshed.
var ErrDerivedFieldsStale = errors.New("ledger entry recorded but document derived fields are stale")

// PersistenceGapError reports a committed ledger entry whose document update failed even after
// retries. The entry stands; a reconciliation pass repairs the document.
type PersistenceGapError struct {
	PaymentID  string
	DocumentID string
	Err        error
}

func (e *PersistenceGapError) Error() string {
	return fmt.Sprintf("%v (payment %s, document %s): %v", ErrDerivedFieldsStale, e.PaymentID, e.DocumentID, e.Err)
}

func (e *PersistenceGapError) Unwrap() []error {
	return []error{ErrDerivedFieldsStale, e.Err}
}
