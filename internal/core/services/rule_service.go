package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/google/uuid"
)

// RuleCacheInvalidator is notified after every attempted rule write, whether or not the
// store reported success.
type RuleCacheInvalidator interface {
	Invalidate(workplaceID string)
}

// ruleService implements the RuleSvcFacade interface
type ruleService struct {
	BaseService
	ruleRepo       portsrepo.AssignmentRuleRepositoryFacade
	costCenterRepo portsrepo.CostCenterReader
	invalidator    RuleCacheInvalidator
}

// NewRuleService creates the assignment rule service.
func NewRuleService(ruleRepo portsrepo.AssignmentRuleRepositoryFacade, costCenterRepo portsrepo.CostCenterReader, invalidator RuleCacheInvalidator) portssvc.RuleSvcFacade {
	return &ruleService{ruleRepo: ruleRepo, costCenterRepo: costCenterRepo, invalidator: invalidator}
}

var _ portssvc.RuleSvcFacade = (*ruleService)(nil)

func (s *ruleService) CreateRule(ctx context.Context, workplaceID string, req dto.CreateAssignmentRuleRequest, userID string) (*domain.AssignmentRule, error) {
	now := time.Now()
	rule := domain.AssignmentRule{
		RuleID:            uuid.NewString(),
		WorkplaceID:       workplaceID,
		Name:              strings.TrimSpace(req.Name),
		CounterpartyTagID: req.CounterpartyTagID,
		CounterpartyID:    req.CounterpartyID,
		ItemCategoryID:    req.ItemCategoryID,
		ItemID:            req.ItemID,
		CostCenterID:      req.CostCenterID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.prepare(ctx, &rule, req.Priority); err != nil {
		return nil, err
	}

	err := s.ruleRepo.SaveRule(ctx, rule)
	s.invalidator.Invalidate(workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to save assignment rule",
			slog.String("workplace_id", workplaceID),
			slog.String("rule_id", rule.RuleID))
		return nil, err
	}

	s.LogInfo(ctx, "Assignment rule created",
		slog.String("workplace_id", workplaceID),
		slog.String("rule_id", rule.RuleID),
		slog.Int("specificity", rule.Specificity),
		slog.Int("priority", rule.Priority))
	return &rule, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, workplaceID, ruleID string, req dto.UpdateAssignmentRuleRequest, userID string) (*domain.AssignmentRule, error) {
	existing, err := s.ruleRepo.FindRuleByID(ctx, workplaceID, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find assignment rule", slog.String("rule_id", ruleID))
		}
		return nil, err
	}
	if existing.IsArchived {
		return nil, ErrArchivedRuleReadOnly
	}

	rule := *existing
	rule.Name = strings.TrimSpace(req.Name)
	rule.CounterpartyTagID = req.CounterpartyTagID
	rule.CounterpartyID = req.CounterpartyID
	rule.ItemCategoryID = req.ItemCategoryID
	rule.ItemID = req.ItemID
	rule.CostCenterID = req.CostCenterID
	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = userID
	if err := s.prepare(ctx, &rule, req.Priority); err != nil {
		return nil, err
	}

	err = s.ruleRepo.UpdateRule(ctx, rule)
	s.invalidator.Invalidate(workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update assignment rule", slog.String("rule_id", ruleID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Assignment rule updated",
		slog.String("workplace_id", workplaceID),
		slog.String("rule_id", ruleID))
	return &rule, nil
}

// ArchiveRule archives a rule. Archiving an already archived rule succeeds without a write.
func (s *ruleService) ArchiveRule(ctx context.Context, workplaceID, ruleID, userID string) error {
	existing, err := s.ruleRepo.FindRuleByID(ctx, workplaceID, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find assignment rule", slog.String("rule_id", ruleID))
		}
		return err
	}
	if existing.IsArchived {
		return nil
	}

	err = s.ruleRepo.ArchiveRule(ctx, workplaceID, ruleID, userID, time.Now())
	s.invalidator.Invalidate(workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to archive assignment rule", slog.String("rule_id", ruleID))
		}
		return err
	}

	s.LogInfo(ctx, "Assignment rule archived",
		slog.String("workplace_id", workplaceID),
		slog.String("rule_id", ruleID))
	return nil
}

func (s *ruleService) GetRule(ctx context.Context, workplaceID, ruleID string) (*domain.AssignmentRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, workplaceID, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find assignment rule", slog.String("rule_id", ruleID))
		}
		return nil, err
	}
	return rule, nil
}

func (s *ruleService) ListRules(ctx context.Context, workplaceID string, params dto.ListAssignmentRulesParams) ([]domain.AssignmentRule, error) {
	rules, err := s.ruleRepo.ListRules(ctx, workplaceID, params.IncludeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assignment rules", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to list assignment rules: %w", err)
	}
	if rules == nil {
		return []domain.AssignmentRule{}, nil
	}
	return rules, nil
}

// prepare normalizes and validates a rule definition and fills its computed fields.
func (s *ruleService) prepare(ctx context.Context, rule *domain.AssignmentRule, priority *int) error {
	rule.NormalizePredicates()
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	cc, err := s.costCenterRepo.FindCostCenterByID(ctx, rule.WorkplaceID, rule.CostCenterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrCostCenterUnusable, rule.CostCenterID)
		}
		s.LogError(ctx, err, "Failed to look up cost center", slog.String("cost_center_id", rule.CostCenterID))
		return err
	}
	if cc.IsArchived {
		return fmt.Errorf("%w: %s", ErrCostCenterUnusable, rule.CostCenterID)
	}

	rule.Specificity = rule.PredicateCount()
	rule.Priority = rule.Specificity
	if priority != nil {
		rule.Priority = *priority
	}
	return nil
}
