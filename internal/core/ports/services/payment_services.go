package services

import (
	"context"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/dto"
)

// PaymentWriterSvc defines the ledger-writing operations
type PaymentWriterSvc interface {
	// Pay appends a payment to the document's ledger and refreshes its derived fields.
	Pay(ctx context.Context, workplaceID, documentID string, req dto.CreatePaymentRequest, userID string) (*domain.PaymentResult, error)

	// ReversePayment appends a compensating negative entry for an earlier payment.
	ReversePayment(ctx context.Context, workplaceID, paymentID string, req dto.ReversePaymentRequest, userID string) (*domain.PaymentResult, error)
}

// PaymentReaderSvc defines read operations over the ledger
type PaymentReaderSvc interface {
	// GetBalance recomputes the document's position from the ledger.
	GetBalance(ctx context.Context, workplaceID, documentID string) (*domain.DocumentBalance, error)

	ListPayments(ctx context.Context, workplaceID, documentID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// ReconcileProgress is called after each document of a reconciliation pass.
type ReconcileProgress func(done, total int)

// LedgerMaintenanceSvc repairs cached document fields from the ledger
type LedgerMaintenanceSvc interface {
	// RecomputeDocument rewrites a document's paid amount and status from the ledger.
	RecomputeDocument(ctx context.Context, workplaceID, documentID, userID string) (*domain.FinancialDocument, error)

	// Reconcile scans payable documents, optionally limited to one workplace, and repairs
	// those whose cached fields drifted from the ledger.
	Reconcile(ctx context.Context, workplaceID string, progress ReconcileProgress) (*domain.ReconcileReport, error)
}

// PaymentSvcFacade combines all payment service interfaces
type PaymentSvcFacade interface {
	PaymentWriterSvc
	PaymentReaderSvc
	LedgerMaintenanceSvc
}
