package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// AssignmentRuleReader defines read operations for assignment rules
type AssignmentRuleReader interface {
	// FindRuleByID retrieves a rule, archived or not.
	FindRuleByID(ctx context.Context, workplaceID, ruleID string) (*domain.AssignmentRule, error)

	// ListActiveRules returns all non-archived rules of a workplace ordered by specificity desc,
	// then creation time asc. The order is a convenience only; resolution never depends on it.
	ListActiveRules(ctx context.Context, workplaceID string) ([]domain.AssignmentRule, error)

	// ListRules returns the rules of a workplace, optionally including archived ones.
	ListRules(ctx context.Context, workplaceID string, includeArchived bool) ([]domain.AssignmentRule, error)
}

// AssignmentRuleWriter defines write operations for assignment rules
type AssignmentRuleWriter interface {
	SaveRule(ctx context.Context, rule domain.AssignmentRule) error

	// UpdateRule rewrites the mutable fields of a non-archived rule.
	UpdateRule(ctx context.Context, rule domain.AssignmentRule) error

	// ArchiveRule marks a rule archived. Archiving an archived rule returns ErrNotFound.
	ArchiveRule(ctx context.Context, workplaceID, ruleID, userID string, at time.Time) error
}

// AssignmentRuleRepositoryFacade combines all assignment-rule repository interfaces
type AssignmentRuleRepositoryFacade interface {
	AssignmentRuleReader
	AssignmentRuleWriter
}
