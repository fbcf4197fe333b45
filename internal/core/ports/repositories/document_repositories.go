package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DocumentReader defines read operations for financial documents
type DocumentReader interface {
	FindDocumentByID(ctx context.Context, workplaceID, documentID string) (*domain.FinancialDocument, error)

	// ListPayableDocuments returns non-archived documents in a payable status. An empty
	// workplaceID scans every workplace.
	ListPayableDocuments(ctx context.Context, workplaceID string) ([]domain.FinancialDocument, error)
}

// DocumentTxWriter defines the locked read and derived-field update used by the payment flow.
// Both must be called within the same transaction.
type DocumentTxWriter interface {
	// FindDocumentForUpdate reads a document and locks its row until the transaction ends.
	FindDocumentForUpdate(ctx context.Context, tx pgx.Tx, workplaceID, documentID string) (*domain.FinancialDocument, error)

	// UpdateDerivedFieldsInTx writes paid amount and status and bumps the version.
	// It returns the new version.
	UpdateDerivedFieldsInTx(ctx context.Context, tx pgx.Tx, documentID string, paid decimal.Decimal, status domain.DocumentStatus, userID string, at time.Time) (int64, error)
}

// DocumentRepositoryFacade combines all document repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentTxWriter
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
