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
)

type PgxTransactionLineRepository struct {
	BaseRepository
}

func newPgxTransactionLineRepository(pool *pgxpool.Pool) portsrepo.TransactionLineRepositoryFacade {
	return &PgxTransactionLineRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionLineRepositoryFacade = (*PgxTransactionLineRepository)(nil)

func (r *PgxTransactionLineRepository) ListLinesByDocument(ctx context.Context, workplaceID, documentID string) ([]domain.TransactionLine, error) {
	query := `
		SELECT line_id, workplace_id, document_id, counterparty_id, item_id, description, amount,
		       cost_center_id, assigned_by_rule_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transaction_lines
		WHERE workplace_id = $1 AND document_id = $2
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of document "+documentID, err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TransactionLine])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect transaction line rows", err)
	}
	return mapping.ToDomainTransactionLineSlice(lines), nil
}

// AssignCostCenters queues one conditional update per line in a batch. Lines that gained a
// cost center since they were read are skipped by the IS NULL guard.
func (r *PgxTransactionLineRepository) AssignCostCenters(ctx context.Context, workplaceID string, assignments []domain.LineAssignment, userID string, at time.Time) ([]string, error) {
	updated := []string{}
	if len(assignments) == 0 {
		return updated, nil
	}

	query := `
		UPDATE transaction_lines
		SET cost_center_id = $3, assigned_by_rule_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE workplace_id = $1 AND line_id = $2 AND cost_center_id IS NULL
		RETURNING line_id;
	`
	batch := &pgx.Batch{}
	for _, a := range assignments {
		batch.Queue(query, workplaceID, a.LineID, a.AssignedCostCenterID, a.RuleID, at, userID)
	}

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range assignments {
		var lineID string
		err := br.QueryRow().Scan(&lineID)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to assign cost centers", err)
		}
		updated = append(updated, lineID)
	}
	return updated, nil
}
