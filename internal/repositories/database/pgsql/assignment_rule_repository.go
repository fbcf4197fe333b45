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

type PgxAssignmentRuleRepository struct {
	BaseRepository
}

func newPgxAssignmentRuleRepository(pool *pgxpool.Pool) portsrepo.AssignmentRuleRepositoryFacade {
	return &PgxAssignmentRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssignmentRuleRepositoryFacade = (*PgxAssignmentRuleRepository)(nil)

const assignmentRuleSelect = `
SELECT rule_id, workplace_id, name,
       counterparty_tag_id, counterparty_id, item_category_id, item_id,
       cost_center_id, specificity, priority, is_archived, archived_at,
       created_at, created_by, last_updated_at, last_updated_by
FROM assignment_rules
`

func (r *PgxAssignmentRuleRepository) getRules(ctx context.Context, filter string, args ...any) ([]domain.AssignmentRule, error) {
	rows, err := r.Pool.Query(ctx, assignmentRuleSelect+filter, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assignment rules", err)
	}
	defer rows.Close()

	rules, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AssignmentRule])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect assignment rule rows", err)
	}
	return mapping.ToDomainAssignmentRuleSlice(rules), nil
}

func (r *PgxAssignmentRuleRepository) FindRuleByID(ctx context.Context, workplaceID, ruleID string) (*domain.AssignmentRule, error) {
	rules, err := r.getRules(ctx, `WHERE workplace_id = $1 AND rule_id = $2`, workplaceID, ruleID)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &rules[0], nil
}

func (r *PgxAssignmentRuleRepository) ListActiveRules(ctx context.Context, workplaceID string) ([]domain.AssignmentRule, error) {
	return r.getRules(ctx, `WHERE workplace_id = $1 AND NOT is_archived ORDER BY specificity DESC, created_at ASC`, workplaceID)
}

func (r *PgxAssignmentRuleRepository) ListRules(ctx context.Context, workplaceID string, includeArchived bool) ([]domain.AssignmentRule, error) {
	return r.getRules(ctx, `WHERE workplace_id = $1 AND ($2 OR NOT is_archived) ORDER BY specificity DESC, created_at ASC`, workplaceID, includeArchived)
}

func (r *PgxAssignmentRuleRepository) SaveRule(ctx context.Context, rule domain.AssignmentRule) error {
	m := mapping.ToModelAssignmentRule(rule)
	query := `
		INSERT INTO assignment_rules (
			rule_id, workplace_id, name,
			counterparty_tag_id, counterparty_id, item_category_id, item_id,
			cost_center_id, specificity, priority, is_archived, archived_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RuleID, m.WorkplaceID, m.Name,
		m.CounterpartyTagID, m.CounterpartyID, m.ItemCategoryID, m.ItemID,
		m.CostCenterID, m.Specificity, m.Priority, m.IsArchived, m.ArchivedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "assignment rule "+m.RuleID)
	}
	return nil
}

func (r *PgxAssignmentRuleRepository) UpdateRule(ctx context.Context, rule domain.AssignmentRule) error {
	m := mapping.ToModelAssignmentRule(rule)
	query := `
		UPDATE assignment_rules
		SET name = $3,
		    counterparty_tag_id = $4, counterparty_id = $5, item_category_id = $6, item_id = $7,
		    cost_center_id = $8, specificity = $9, priority = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE workplace_id = $1 AND rule_id = $2 AND NOT is_archived;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.WorkplaceID, m.RuleID, m.Name,
		m.CounterpartyTagID, m.CounterpartyID, m.ItemCategoryID, m.ItemID,
		m.CostCenterID, m.Specificity, m.Priority,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "assignment rule "+m.RuleID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAssignmentRuleRepository) ArchiveRule(ctx context.Context, workplaceID, ruleID, userID string, at time.Time) error {
	query := `
		UPDATE assignment_rules
		SET is_archived = TRUE, archived_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND rule_id = $2 AND NOT is_archived;
	`
	tag, err := r.Pool.Exec(ctx, query, workplaceID, ruleID, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to archive assignment rule "+ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
