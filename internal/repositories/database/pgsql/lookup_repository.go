package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLookupRepository reads the counterparty tag and item category facts used for matching.
type PgxLookupRepository struct {
	BaseRepository
}

func newPgxLookupRepository(pool *pgxpool.Pool) *PgxLookupRepository {
	return &PgxLookupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.CounterpartyTagReader = (*PgxLookupRepository)(nil)
	_ portsrepo.ItemCategoryReader    = (*PgxLookupRepository)(nil)
)

func (r *PgxLookupRepository) FindTagIDsByCounterparty(ctx context.Context, workplaceID, counterpartyID string) ([]string, error) {
	query := `
		SELECT tag_id FROM counterparty_tags
		WHERE workplace_id = $1 AND counterparty_id = $2
		ORDER BY tag_id;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, counterpartyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query counterparty tags", err)
	}
	tags, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect counterparty tags", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (r *PgxLookupRepository) FindTagIDsByCounterparties(ctx context.Context, workplaceID string, counterpartyIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(counterpartyIDs))
	if len(counterpartyIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT counterparty_id, tag_id FROM counterparty_tags
		WHERE workplace_id = $1 AND counterparty_id = ANY($2)
		ORDER BY counterparty_id, tag_id;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, counterpartyIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query counterparty tags", err)
	}
	defer rows.Close()

	for rows.Next() {
		var counterpartyID, tagID string
		if err := rows.Scan(&counterpartyID, &tagID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan counterparty tag", err)
		}
		out[counterpartyID] = append(out[counterpartyID], tagID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read counterparty tags", err)
	}
	return out, nil
}

func (r *PgxLookupRepository) FindCategoryByItem(ctx context.Context, workplaceID, itemID string) (*string, error) {
	query := `SELECT category_id FROM products WHERE workplace_id = $1 AND product_id = $2;`
	var categoryID *string
	err := r.Pool.QueryRow(ctx, query, workplaceID, itemID).Scan(&categoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to query item category", err)
	}
	return categoryID, nil
}

func (r *PgxLookupRepository) FindCategoriesByItems(ctx context.Context, workplaceID string, itemIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT product_id, category_id FROM products
		WHERE workplace_id = $1 AND product_id = ANY($2) AND category_id IS NOT NULL;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, itemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query item categories", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, categoryID string
		if err := rows.Scan(&itemID, &categoryID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item category", err)
		}
		out[itemID] = categoryID
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read item categories", err)
	}
	return out, nil
}
