package services

import (
	"context"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/dto"
)

// RuleReaderSvc defines read operations for assignment rules
type RuleReaderSvc interface {
	GetRule(ctx context.Context, workplaceID, ruleID string) (*domain.AssignmentRule, error)
	ListRules(ctx context.Context, workplaceID string, params dto.ListAssignmentRulesParams) ([]domain.AssignmentRule, error)
}

// RuleWriterSvc defines write operations for assignment rules.
// Every successful write invalidates the workplace's rule cache before returning.
type RuleWriterSvc interface {
	CreateRule(ctx context.Context, workplaceID string, req dto.CreateAssignmentRuleRequest, userID string) (*domain.AssignmentRule, error)
	UpdateRule(ctx context.Context, workplaceID, ruleID string, req dto.UpdateAssignmentRuleRequest, userID string) (*domain.AssignmentRule, error)
	ArchiveRule(ctx context.Context, workplaceID, ruleID, userID string) error
}

// RuleSvcFacade combines all rule service interfaces
type RuleSvcFacade interface {
	RuleReaderSvc
	RuleWriterSvc
}

// AssignmentSvcFacade evaluates the active rule set against transaction lines.
type AssignmentSvcFacade interface {
	// Evaluate returns the winning rule for one line context. No match is not an error.
	Evaluate(ctx context.Context, workplaceID string, counterpartyID, itemID *string) (domain.MatchResult, error)

	// EvaluateBatch evaluates many lines against one freshly loaded rule snapshot.
	EvaluateBatch(ctx context.Context, workplaceID string, lines []domain.LineInput) ([]domain.LineAssignment, error)

	// AssignTransactionLines evaluates the lines of a document and writes the winning cost
	// center onto lines that have none yet.
	AssignTransactionLines(ctx context.Context, workplaceID, documentID, userID string) ([]domain.LineAssignment, error)

	InvalidateRuleCache(workplaceID string)
}
