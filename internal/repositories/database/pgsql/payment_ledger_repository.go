package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"github.com/SscSPs/furniture_erp/internal/models"
	"github.com/SscSPs/furniture_erp/internal/utils/mapping"
	"github.com/SscSPs/furniture_erp/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerSelect = `
SELECT payment_id, workplace_id, document_id, payment_number, amount, mode, entry_status,
       reference, notes, reverses_payment_id, paid_at,
       created_at, created_by, last_updated_at, last_updated_by
FROM payment_ledger
`

const sumCompletedQuery = `
SELECT COALESCE(SUM(amount), 0) FROM payment_ledger
WHERE document_id = $1 AND entry_status = 'COMPLETED';
`

func (r *PgxLedgerRepository) SumCompletedByDocument(ctx context.Context, documentID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, sumCompletedQuery, documentID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum ledger for document "+documentID, err)
	}
	return total, nil
}

func (r *PgxLedgerRepository) SumCompletedByDocumentInTx(ctx context.Context, tx pgx.Tx, documentID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := tx.QueryRow(ctx, sumCompletedQuery, documentID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum ledger for document "+documentID, err)
	}
	return total, nil
}

func (r *PgxLedgerRepository) FindPaymentByID(ctx context.Context, workplaceID, paymentID string) (*domain.PaymentLedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, ledgerSelect+`WHERE workplace_id = $1 AND payment_id = $2`, workplaceID, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment "+paymentID, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PaymentLedgerEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect payment rows", err)
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	entry := mapping.ToDomainPaymentLedgerEntry(entries[0])
	return &entry, nil
}

// ListPaymentsByDocument pages with a keyset on (paid_at, payment_id). One extra row is read
// to decide whether a next page exists.
func (r *PgxLedgerRepository) ListPaymentsByDocument(ctx context.Context, workplaceID, documentID string, limit int, nextToken *string) ([]domain.PaymentLedgerEntry, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	args := []any{workplaceID, documentID}
	filter := `WHERE workplace_id = $1 AND document_id = $2`
	if nextToken != nil && *nextToken != "" {
		paidAt, paymentID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid next token: %v", apperrors.ErrValidation, err)
		}
		filter += ` AND (paid_at, payment_id) > ($3, $4)`
		args = append(args, paidAt, paymentID)
	}
	filter += fmt.Sprintf(` ORDER BY paid_at ASC, payment_id ASC LIMIT %d`, limit+1)

	rows, err := r.Pool.Query(ctx, ledgerSelect+filter, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query payments for document "+documentID, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PaymentLedgerEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect payment rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.PaidAt, last.PaymentID)
		token = &t
	}
	return mapping.ToDomainPaymentLedgerEntrySlice(entries), token, nil
}

func (r *PgxLedgerRepository) HasReversalInTx(ctx context.Context, tx pgx.Tx, paymentID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payment_ledger WHERE reverses_payment_id = $1)`, paymentID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check reversal of payment "+paymentID, err)
	}
	return exists, nil
}

// InsertEntryInTx appends an entry. The unique index on reverses_payment_id turns a second
// reversal of the same payment into ErrConflict.
func (r *PgxLedgerRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.PaymentLedgerEntry) error {
	m := mapping.ToModelPaymentLedgerEntry(entry)
	query := `
		INSERT INTO payment_ledger (
			payment_id, workplace_id, document_id, payment_number, amount, mode, entry_status,
			reference, notes, reverses_payment_id, paid_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID, m.WorkplaceID, m.DocumentID, m.PaymentNumber, m.Amount, m.Mode, m.EntryStatus,
		m.Reference, m.Notes, m.ReversesPaymentID, m.PaidAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		werr := translateWriteError(err, "payment "+m.PaymentNumber)
		if m.ReversesPaymentID != nil && errors.Is(werr, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: payment %s has already been reversed", apperrors.ErrConflict, *m.ReversesPaymentID)
		}
		return werr
	}
	return nil
}

// NextPaymentSequenceInTx allocates from payment_sequences with an upsert, so two
// transactions never receive the same number for one bucket.
func (r *PgxLedgerRepository) NextPaymentSequenceInTx(ctx context.Context, tx pgx.Tx, workplaceID, prefix, period string) (int64, error) {
	query := `
		INSERT INTO payment_sequences (workplace_id, prefix, period, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (workplace_id, prefix, period)
		DO UPDATE SET last_value = payment_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, workplaceID, prefix, period).Scan(&seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate payment number", err)
	}
	return seq, nil
}
