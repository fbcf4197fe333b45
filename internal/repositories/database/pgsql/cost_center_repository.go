package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"github.com/SscSPs/furniture_erp/internal/models"
	"github.com/SscSPs/furniture_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCostCenterRepository struct {
	BaseRepository
}

func newPgxCostCenterRepository(pool *pgxpool.Pool) portsrepo.CostCenterRepositoryFacade {
	return &PgxCostCenterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

const costCenterSelect = `
SELECT cost_center_id, workplace_id, code, name, is_archived,
       created_at, created_by, last_updated_at, last_updated_by
FROM cost_centers
`

func (r *PgxCostCenterRepository) getCostCenters(ctx context.Context, filter string, args ...any) ([]domain.CostCenter, error) {
	rows, err := r.Pool.Query(ctx, costCenterSelect+filter, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cost centers", err)
	}
	defer rows.Close()

	costCenters, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CostCenter])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect cost center rows", err)
	}
	return mapping.ToDomainCostCenterSlice(costCenters), nil
}

func (r *PgxCostCenterRepository) FindCostCenterByID(ctx context.Context, workplaceID, costCenterID string) (*domain.CostCenter, error) {
	costCenters, err := r.getCostCenters(ctx, `WHERE workplace_id = $1 AND cost_center_id = $2`, workplaceID, costCenterID)
	if err != nil {
		return nil, err
	}
	if len(costCenters) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &costCenters[0], nil
}

func (r *PgxCostCenterRepository) ListCostCenters(ctx context.Context, workplaceID string, includeArchived bool) ([]domain.CostCenter, error) {
	return r.getCostCenters(ctx, `WHERE workplace_id = $1 AND ($2 OR NOT is_archived) ORDER BY code`, workplaceID, includeArchived)
}

func (r *PgxCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := mapping.ToModelCostCenter(costCenter)
	query := `
		INSERT INTO cost_centers (
			cost_center_id, workplace_id, code, name, is_archived,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CostCenterID, m.WorkplaceID, m.Code, m.Name, m.IsArchived,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "cost center "+m.Code)
	}
	return nil
}

func (r *PgxCostCenterRepository) ArchiveCostCenter(ctx context.Context, workplaceID, costCenterID, userID string, at time.Time) error {
	query := `
		UPDATE cost_centers
		SET is_archived = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND cost_center_id = $2 AND NOT is_archived;
	`
	tag, err := r.Pool.Exec(ctx, query, workplaceID, costCenterID, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to archive cost center "+costCenterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
