package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"github.com/SscSPs/furniture_erp/internal/models"
	"github.com/SscSPs/furniture_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

const documentSelect = `
SELECT document_id, workplace_id, kind, document_number, counterparty_id,
       total_amount, paid_amount, status, is_archived, version,
       created_at, created_by, last_updated_at, last_updated_by
FROM financial_documents
`

func collectDocuments(rows pgx.Rows) ([]domain.FinancialDocument, error) {
	docs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FinancialDocument])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect document rows", err)
	}
	return mapping.ToDomainFinancialDocumentSlice(docs), nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, workplaceID, documentID string) (*domain.FinancialDocument, error) {
	rows, err := r.Pool.Query(ctx, documentSelect+`WHERE workplace_id = $1 AND document_id = $2`, workplaceID, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document "+documentID, err)
	}
	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &docs[0], nil
}

func (r *PgxDocumentRepository) ListPayableDocuments(ctx context.Context, workplaceID string) ([]domain.FinancialDocument, error) {
	filter := `
		WHERE ($1::text = '' OR workplace_id = $1)
		  AND NOT is_archived
		  AND status IN ('POSTED', 'PARTIALLY_PAID', 'PAID')
		ORDER BY workplace_id, created_at, document_id
	`
	rows, err := r.Pool.Query(ctx, documentSelect+filter, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payable documents", err)
	}
	return collectDocuments(rows)
}

// FindDocumentForUpdate takes a row lock that is held until tx ends, serializing concurrent
// payments against the same document.
func (r *PgxDocumentRepository) FindDocumentForUpdate(ctx context.Context, tx pgx.Tx, workplaceID, documentID string) (*domain.FinancialDocument, error) {
	rows, err := tx.Query(ctx, documentSelect+`WHERE workplace_id = $1 AND document_id = $2 FOR UPDATE`, workplaceID, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock document "+documentID, err)
	}
	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &docs[0], nil
}

func (r *PgxDocumentRepository) UpdateDerivedFieldsInTx(ctx context.Context, tx pgx.Tx, documentID string, paid decimal.Decimal, status domain.DocumentStatus, userID string, at time.Time) (int64, error) {
	query := `
		UPDATE financial_documents
		SET paid_amount = $2, status = $3, version = version + 1,
		    last_updated_at = $4, last_updated_by = $5
		WHERE document_id = $1
		RETURNING version;
	`
	var version int64
	err := tx.QueryRow(ctx, query, documentID, paid, string(status), at, userID).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to update derived fields of document "+documentID, err)
	}
	return version, nil
}
