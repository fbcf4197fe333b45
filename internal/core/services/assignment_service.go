package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/utils/analytic"
)

// assignmentService implements the AssignmentSvcFacade interface
type assignmentService struct {
	BaseService
	cache    *RuleCache
	builder  *ContextBuilder
	lineRepo portsrepo.TransactionLineRepositoryFacade
}

// NewAssignmentService creates the analytic assignment service.
func NewAssignmentService(cache *RuleCache, builder *ContextBuilder, lineRepo portsrepo.TransactionLineRepositoryFacade) portssvc.AssignmentSvcFacade {
	return &assignmentService{cache: cache, builder: builder, lineRepo: lineRepo}
}

var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

func (s *assignmentService) Evaluate(ctx context.Context, workplaceID string, counterpartyID, itemID *string) (domain.MatchResult, error) {
	rules, err := s.cache.Get(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assignment rules", slog.String("workplace_id", workplaceID))
		return domain.MatchResult{}, err
	}

	mctx := s.builder.Build(ctx, workplaceID, counterpartyID, itemID)
	result := analytic.Evaluate(rules, mctx)

	if result.Matched() {
		s.LogDebug(ctx, "Assignment rule matched",
			slog.String("workplace_id", workplaceID),
			slog.String("rule_id", *result.RuleID),
			slog.Int("score", result.Score),
			slog.Any("matched_fields", result.MatchedFields))
	}
	return result, nil
}

func (s *assignmentService) EvaluateBatch(ctx context.Context, workplaceID string, lines []domain.LineInput) ([]domain.LineAssignment, error) {
	if len(lines) == 0 {
		return []domain.LineAssignment{}, nil
	}

	// A batch always sees the rules as they are now, not a cached snapshot.
	rules, err := s.cache.Fresh(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assignment rules for batch", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	contexts := s.builder.BuildMany(ctx, workplaceID, lines)

	assignments := make([]domain.LineAssignment, len(lines))
	matched := 0
	for i, line := range lines {
		result := analytic.Evaluate(rules, contexts[i])
		assignments[i] = domain.LineAssignment{
			LineID:               line.LineID,
			AssignedCostCenterID: result.CostCenterID,
			RuleID:               result.RuleID,
		}
		if result.Matched() {
			matched++
		}
	}

	s.LogDebug(ctx, "Batch assignment evaluated",
		slog.String("workplace_id", workplaceID),
		slog.Int("lines", len(lines)),
		slog.Int("matched", matched),
		slog.Int("rules", len(rules)))
	return assignments, nil
}

func (s *assignmentService) AssignTransactionLines(ctx context.Context, workplaceID, documentID, userID string) ([]domain.LineAssignment, error) {
	lines, err := s.lineRepo.ListLinesByDocument(ctx, workplaceID, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list document lines",
			slog.String("workplace_id", workplaceID),
			slog.String("document_id", documentID))
		return nil, err
	}

	// Manually assigned lines are never overwritten.
	inputs := make([]domain.LineInput, 0, len(lines))
	for _, l := range lines {
		if l.CostCenterID != nil {
			continue
		}
		inputs = append(inputs, domain.LineInput{LineID: l.LineID, CounterpartyID: l.CounterpartyID, ItemID: l.ItemID})
	}

	assignments, err := s.EvaluateBatch(ctx, workplaceID, inputs)
	if err != nil {
		return nil, err
	}

	toWrite := make([]domain.LineAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.AssignedCostCenterID != nil {
			toWrite = append(toWrite, a)
		}
	}
	if len(toWrite) == 0 {
		return assignments, nil
	}

	updated, err := s.lineRepo.AssignCostCenters(ctx, workplaceID, toWrite, userID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to write line assignments",
			slog.String("workplace_id", workplaceID),
			slog.String("document_id", documentID))
		return nil, err
	}

	// Lines assigned by someone else between the read and the write were skipped by the store.
	written := make(map[string]struct{}, len(updated))
	for _, id := range updated {
		written[id] = struct{}{}
	}
	result := make([]domain.LineAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.AssignedCostCenterID != nil {
			if _, ok := written[a.LineID]; !ok {
				continue
			}
		}
		result = append(result, a)
	}

	s.LogInfo(ctx, "Cost centers assigned to document lines",
		slog.String("workplace_id", workplaceID),
		slog.String("document_id", documentID),
		slog.Int("evaluated", len(inputs)),
		slog.Int("assigned", len(updated)))
	return result, nil
}

func (s *assignmentService) InvalidateRuleCache(workplaceID string) {
	s.cache.Invalidate(workplaceID)
}
