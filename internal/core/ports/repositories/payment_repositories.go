package repositories

import (
	"context"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for the payment ledger
type LedgerReader interface {
	// SumCompletedByDocument returns the signed sum of COMPLETED entries for a document.
	SumCompletedByDocument(ctx context.Context, documentID string) (decimal.Decimal, error)

	// SumCompletedByDocumentInTx is SumCompletedByDocument evaluated inside tx.
	SumCompletedByDocumentInTx(ctx context.Context, tx pgx.Tx, documentID string) (decimal.Decimal, error)

	FindPaymentByID(ctx context.Context, workplaceID, paymentID string) (*domain.PaymentLedgerEntry, error)

	// ListPaymentsByDocument returns a page of entries ordered by paid_at, payment_id, plus the
	// token for the next page.
	ListPaymentsByDocument(ctx context.Context, workplaceID, documentID string, limit int, nextToken *string) ([]domain.PaymentLedgerEntry, *string, error)

	// HasReversalInTx reports whether a reversal entry already points at paymentID.
	HasReversalInTx(ctx context.Context, tx pgx.Tx, paymentID string) (bool, error)
}

// LedgerWriter defines the append-only write operations of the payment ledger
type LedgerWriter interface {
	InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.PaymentLedgerEntry) error

	// NextPaymentSequenceInTx allocates the next number in the workplace+prefix+period bucket.
	NextPaymentSequenceInTx(ctx context.Context, tx pgx.Tx, workplaceID, prefix, period string) (int64, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
