package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/utils/accounting"
	"github.com/SscSPs/furniture_erp/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Default payment number prefixes.
const (
	DefaultInvoicePaymentPrefix = "PAY-IN"
	DefaultBillPaymentPrefix    = "PAY-OUT"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	documentRepo  portsrepo.DocumentRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	invoicePrefix string
	billPrefix    string
	retry         RetryOptions
	now           func() time.Time
}

// PaymentOption is a functional option for configuring the payment service
type PaymentOption func(*paymentService)

// WithPaymentPrefixes overrides the payment number prefixes. Empty values keep the defaults.
func WithPaymentPrefixes(invoicePrefix, billPrefix string) PaymentOption {
	return func(s *paymentService) {
		if invoicePrefix != "" {
			s.invoicePrefix = invoicePrefix
		}
		if billPrefix != "" {
			s.billPrefix = billPrefix
		}
	}
}

// WithPersistRetry sets the backoff used when refreshing derived fields after a committed entry.
func WithPersistRetry(opts RetryOptions) PaymentOption {
	return func(s *paymentService) {
		s.retry = opts
	}
}

// WithClock replaces the time source used for payment numbers and audit fields.
func WithClock(now func() time.Time) PaymentOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// NewPaymentService creates the payment ledger service with the provided options
func NewPaymentService(txManager portsrepo.TransactionManager, documentRepo portsrepo.DocumentRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, options ...PaymentOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		txManager:     txManager,
		documentRepo:  documentRepo,
		ledgerRepo:    ledgerRepo,
		invoicePrefix: DefaultInvoicePaymentPrefix,
		billPrefix:    DefaultBillPaymentPrefix,
		retry:         DefaultRetryOptions,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// Pay validates the request, then inside one transaction locks the document, re-validates
// against the ledger, appends the entry and refreshes the document's derived fields.
func (s *paymentService) Pay(ctx context.Context, workplaceID, documentID string, req dto.CreatePaymentRequest, userID string) (*domain.PaymentResult, error) {
	if err := accounting.CheckAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w (got %s)", paymentValidationError(err, req.Amount, decimal.Zero, decimal.Zero), req.Amount.String())
	}
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMode, req.Mode)
	}

	now := s.now()
	paidAt := now
	if req.PaidAt != nil && !req.PaidAt.IsZero() {
		paidAt = *req.PaidAt
	}

	var (
		result *domain.PaymentResult
		gapErr error
	)
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		doc, err := s.lockPayableDocument(ctx, tx, workplaceID, documentID)
		if err != nil {
			return err
		}

		paid, err := s.ledgerRepo.SumCompletedByDocumentInTx(ctx, tx, documentID)
		if err != nil {
			return err
		}
		if err := accounting.ValidatePayment(doc.TotalAmount, paid, req.Amount); err != nil {
			return paymentValidationError(err, req.Amount, doc.TotalAmount, paid)
		}

		number, err := s.nextPaymentNumber(ctx, tx, doc, now)
		if err != nil {
			return err
		}

		entry := domain.PaymentLedgerEntry{
			PaymentID:     uuid.NewString(),
			WorkplaceID:   workplaceID,
			DocumentID:    documentID,
			PaymentNumber: number,
			Amount:        req.Amount,
			Mode:          req.Mode,
			EntryStatus:   domain.EntryCompleted,
			Reference:     req.Reference,
			Notes:         req.Notes,
			PaidAt:        paidAt,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		result, gapErr, err = s.appendEntry(ctx, tx, doc, entry, userID, now)
		return err
	})
	if err != nil {
		s.logPaymentFailure(ctx, err, "Payment rejected", workplaceID, documentID)
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("workplace_id", workplaceID),
		slog.String("document_id", documentID),
		slog.String("payment_id", result.Payment.PaymentID),
		slog.String("payment_number", result.Payment.PaymentNumber),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(result.Status)))

	return s.closeGap(ctx, result, gapErr, userID)
}

// ReversePayment appends a negative entry that compensates an earlier payment. The document's
// status may move back from PAID or PARTIALLY_PAID.
func (s *paymentService) ReversePayment(ctx context.Context, workplaceID, paymentID string, req dto.ReversePaymentRequest, userID string) (*domain.PaymentResult, error) {
	original, err := s.ledgerRepo.FindPaymentByID(ctx, workplaceID, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	if original.IsReversal() {
		return nil, ErrCannotReverseReversal
	}
	if original.EntryStatus != domain.EntryCompleted {
		return nil, ErrPaymentNotReversible
	}

	now := s.now()
	var (
		result *domain.PaymentResult
		gapErr error
	)
	err = s.inTx(ctx, func(tx pgx.Tx) error {
		// The document lock serializes reversals of the same payment.
		doc, err := s.lockPayableDocument(ctx, tx, workplaceID, original.DocumentID)
		if err != nil {
			return err
		}
		reversed, err := s.ledgerRepo.HasReversalInTx(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if reversed {
			return ErrPaymentAlreadyReversed
		}

		number, err := s.nextPaymentNumber(ctx, tx, doc, now)
		if err != nil {
			return err
		}

		originalID := original.PaymentID
		entry := domain.PaymentLedgerEntry{
			PaymentID:         uuid.NewString(),
			WorkplaceID:       workplaceID,
			DocumentID:        original.DocumentID,
			PaymentNumber:     number,
			Amount:            original.Amount.Neg(),
			Mode:              original.Mode,
			EntryStatus:       domain.EntryCompleted,
			Reference:         original.PaymentNumber,
			Notes:             req.Reason,
			ReversesPaymentID: &originalID,
			PaidAt:            now,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		result, gapErr, err = s.appendEntry(ctx, tx, doc, entry, userID, now)
		return err
	})
	if err != nil {
		s.logPaymentFailure(ctx, err, "Payment reversal rejected", workplaceID, original.DocumentID)
		return nil, err
	}

	s.LogInfo(ctx, "Payment reversed",
		slog.String("workplace_id", workplaceID),
		slog.String("document_id", original.DocumentID),
		slog.String("payment_id", paymentID),
		slog.String("reversal_id", result.Payment.PaymentID),
		slog.String("status", string(result.Status)))

	return s.closeGap(ctx, result, gapErr, userID)
}

// GetBalance recomputes the paid amount from the ledger instead of trusting the cached column.
func (s *paymentService) GetBalance(ctx context.Context, workplaceID, documentID string) (*domain.DocumentBalance, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, workplaceID, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", slog.String("document_id", documentID))
		}
		return nil, err
	}

	paid, err := s.ledgerRepo.SumCompletedByDocument(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger", slog.String("document_id", documentID))
		return nil, err
	}

	if !paid.Equal(doc.PaidAmount) {
		s.LogWarn(ctx, "Cached paid amount differs from ledger",
			slog.String("document_id", documentID),
			slog.String("cached", doc.PaidAmount.String()),
			slog.String("ledger", paid.String()))
	}

	return &domain.DocumentBalance{
		DocumentID: documentID,
		Total:      doc.TotalAmount,
		Paid:       paid,
		Balance:    accounting.Balance(doc.TotalAmount, paid),
		Status:     statusFor(doc, paid),
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, workplaceID, documentID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.documentRepo.FindDocumentByID(ctx, workplaceID, documentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", slog.String("document_id", documentID))
		}
		return nil, err
	}

	entries, nextToken, err := s.ledgerRepo.ListPaymentsByDocument(ctx, workplaceID, documentID, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(entries),
		NextToken: nextToken,
	}, nil
}

// RecomputeDocument rewrites a document's paid amount and status from its ledger under a row lock.
// Documents outside the payable states keep their status; only the paid amount is refreshed.
func (s *paymentService) RecomputeDocument(ctx context.Context, workplaceID, documentID, userID string) (*domain.FinancialDocument, error) {
	var updated *domain.FinancialDocument
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		doc, err := s.documentRepo.FindDocumentForUpdate(ctx, tx, workplaceID, documentID)
		if err != nil {
			return err
		}
		paid, err := s.ledgerRepo.SumCompletedByDocumentInTx(ctx, tx, documentID)
		if err != nil {
			return err
		}
		status := statusFor(doc, paid)
		version, err := s.documentRepo.UpdateDerivedFieldsInTx(ctx, tx, documentID, paid, status, userID, s.now())
		if err != nil {
			return err
		}
		doc.PaidAmount = paid
		doc.Status = status
		doc.Version = version
		updated = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Reconcile compares cached paid amounts and statuses with the ledger and repairs drift.
// A failure on one document is counted and logged; the pass continues.
func (s *paymentService) Reconcile(ctx context.Context, workplaceID string, progress portssvc.ReconcileProgress) (*domain.ReconcileReport, error) {
	docs, err := s.documentRepo.ListPayableDocuments(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents for reconciliation", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	report := &domain.ReconcileReport{Repairs: []string{}}
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Scanned++

		paid, err := s.ledgerRepo.SumCompletedByDocument(ctx, doc.DocumentID)
		if err != nil {
			report.Failed++
			s.LogError(ctx, err, "Failed to sum ledger during reconciliation", slog.String("document_id", doc.DocumentID))
		} else if !paid.Equal(doc.PaidAmount) || statusFor(&doc, paid) != doc.Status {
			if _, err := s.RecomputeDocument(ctx, doc.WorkplaceID, doc.DocumentID, reconcileUserID); err != nil {
				report.Failed++
				s.LogError(ctx, err, "Failed to repair document", slog.String("document_id", doc.DocumentID))
			} else {
				report.Repaired++
				report.Repairs = append(report.Repairs, doc.DocumentID)
				s.LogInfo(ctx, "Document derived fields repaired",
					slog.String("document_id", doc.DocumentID),
					slog.String("cached_paid", doc.PaidAmount.String()),
					slog.String("ledger_paid", paid.String()))
			}
		}

		if progress != nil {
			progress(i+1, len(docs))
		}
	}

	s.LogInfo(ctx, "Reconciliation finished",
		slog.String("workplace_id", workplaceID),
		slog.Int("scanned", report.Scanned),
		slog.Int("repaired", report.Repaired),
		slog.Int("failed", report.Failed))
	return report, nil
}

// reconcileUserID is recorded as last_updated_by for repairs made by a reconciliation pass.
const reconcileUserID = "system:reconcile"

// appendEntry inserts the entry and refreshes the document inside tx. The derived-field update
// runs in a savepoint: if it fails, the entry still commits and the failure is returned as the
// second value so the caller can retry it separately.
func (s *paymentService) appendEntry(ctx context.Context, tx pgx.Tx, doc *domain.FinancialDocument, entry domain.PaymentLedgerEntry, userID string, now time.Time) (result *domain.PaymentResult, gapErr error, err error) {
	if err := s.ledgerRepo.InsertEntryInTx(ctx, tx, entry); err != nil {
		return nil, nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	paid, err := s.ledgerRepo.SumCompletedByDocumentInTx(ctx, tx, doc.DocumentID)
	if err != nil {
		return nil, nil, err
	}
	status := accounting.DeriveStatus(doc.TotalAmount, paid)
	result = &domain.PaymentResult{
		Payment:    entry,
		PaidAmount: paid,
		Balance:    accounting.Balance(doc.TotalAmount, paid),
		Status:     status,
	}

	savepoint, err := tx.Begin(ctx)
	if err != nil {
		result.DerivedFieldsStale = true
		return result, err, nil
	}
	if _, err := s.documentRepo.UpdateDerivedFieldsInTx(ctx, savepoint, doc.DocumentID, paid, status, userID, now); err != nil {
		_ = savepoint.Rollback(ctx)
		result.DerivedFieldsStale = true
		return result, err, nil
	}
	if err := savepoint.Commit(ctx); err != nil {
		result.DerivedFieldsStale = true
		return result, err, nil
	}
	return result, nil, nil
}

// closeGap retries the derived-field refresh for a committed entry whose in-transaction update
// failed. When retries are exhausted the result is returned together with a PersistenceGapError.
func (s *paymentService) closeGap(ctx context.Context, result *domain.PaymentResult, gapErr error, userID string) (*domain.PaymentResult, error) {
	if gapErr == nil {
		return result, nil
	}

	logger := s.GetLogger(ctx)
	documentID := result.Payment.DocumentID
	logger.WarnContext(ctx, "Derived field update failed after ledger insert, retrying",
		slog.String("payment_id", result.Payment.PaymentID),
		slog.String("document_id", documentID),
		slog.String("error", gapErr.Error()))

	var doc *domain.FinancialDocument
	err := withRetry(ctx, logger, func() error {
		var err error
		doc, err = s.RecomputeDocument(ctx, result.Payment.WorkplaceID, documentID, userID)
		return err
	}, isPermanent, s.retry)
	if err != nil {
		s.LogError(ctx, err, "Document derived fields left stale; reconciliation will repair them",
			slog.String("payment_id", result.Payment.PaymentID),
			slog.String("document_id", documentID))
		return result, &PersistenceGapError{
			PaymentID:  result.Payment.PaymentID,
			DocumentID: documentID,
			Err:        err,
		}
	}

	result.PaidAmount = doc.PaidAmount
	result.Balance = accounting.Balance(doc.TotalAmount, doc.PaidAmount)
	result.Status = doc.Status
	result.DerivedFieldsStale = false
	return result, nil
}

func (s *paymentService) lockPayableDocument(ctx context.Context, tx pgx.Tx, workplaceID, documentID string) (*domain.FinancialDocument, error) {
	doc, err := s.documentRepo.FindDocumentForUpdate(ctx, tx, workplaceID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.IsArchived || !doc.Status.IsPayable() {
		return nil, fmt.Errorf("%w (status %s, archived %t)", ErrDocumentNotPayable, doc.Status, doc.IsArchived)
	}
	return doc, nil
}

func (s *paymentService) nextPaymentNumber(ctx context.Context, tx pgx.Tx, doc *domain.FinancialDocument, at time.Time) (string, error) {
	prefix := s.invoicePrefix
	if doc.Kind == domain.Bill {
		prefix = s.billPrefix
	}
	seq, err := s.ledgerRepo.NextPaymentSequenceInTx(ctx, tx, doc.WorkplaceID, prefix, accounting.PeriodKey(at))
	if err != nil {
		return "", err
	}
	return accounting.FormatPaymentNumber(prefix, at, seq), nil
}

// inTx runs fn in a transaction, committing on success and rolling back otherwise.
func (s *paymentService) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.txManager.Rollback(ctx, tx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return s.txManager.Commit(ctx, tx)
}

func (s *paymentService) logPaymentFailure(ctx context.Context, err error, msg, workplaceID, documentID string) {
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
		s.LogInfo(ctx, msg,
			slog.String("workplace_id", workplaceID),
			slog.String("document_id", documentID),
			slog.String("reason", err.Error()))
		return
	}
	s.LogError(ctx, err, msg,
		slog.String("workplace_id", workplaceID),
		slog.String("document_id", documentID))
}

// statusFor derives the payable status, leaving DRAFT and CANCELLED documents untouched.
func statusFor(doc *domain.FinancialDocument, paid decimal.Decimal) domain.DocumentStatus {
	if !doc.Status.IsPayable() {
		return doc.Status
	}
	return accounting.DeriveStatus(doc.TotalAmount, paid)
}

func paymentValidationError(err error, amount, total, paid decimal.Decimal) error {
	switch {
	case errors.Is(err, accounting.ErrFullyPaid):
		return fmt.Errorf("%w (total %s, paid %s)", ErrDocumentFullyPaid, total.String(), paid.String())
	case errors.Is(err, accounting.ErrExceedsBalance):
		return fmt.Errorf("%w (amount %s, balance %s)", ErrPaymentExceedsBalance, amount.String(), total.Sub(paid).String())
	case errors.Is(err, accounting.ErrNonPositiveAmount):
		return ErrInvalidPaymentAmount
	case errors.Is(err, accounting.ErrAmountPrecision):
		return ErrAmountPrecision
	default:
		return err
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation)
}
