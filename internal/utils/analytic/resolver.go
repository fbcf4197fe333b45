package analytic

import (
	"sort"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// Candidate is a rule that fully matched a context, with its score.
type Candidate struct {
	Rule          domain.AssignmentRule
	Score         int
	MatchedFields []string
}

// Candidates scores every rule against the context and keeps the valid ones.
func Candidates(rules []domain.AssignmentRule, mctx domain.MatchContext) []Candidate {
	var out []Candidate
	for _, rule := range rules {
		res := Score(rule, mctx)
		if !res.Valid {
			continue
		}
		out = append(out, Candidate{Rule: rule, Score: res.Score, MatchedFields: res.MatchedFields})
	}
	return out
}

// less orders candidates by preference: higher score, then higher explicit priority, then the
// earlier-created rule, then the smaller rule ID so the order is total.
func less(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Rule.Priority != b.Rule.Priority {
		return a.Rule.Priority > b.Rule.Priority
	}
	if !a.Rule.CreatedAt.Equal(b.Rule.CreatedAt) {
		return a.Rule.CreatedAt.Before(b.Rule.CreatedAt)
	}
	return a.Rule.RuleID < b.Rule.RuleID
}

// Resolve picks the single winning candidate, or nil when there is none.
// The input slice is not modified.
func Resolve(candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if less(c, best) {
			best = c
		}
	}
	return &best
}

// Rank returns the candidates sorted from winner to loser. Used for explainability.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	return ranked
}

// Evaluate runs the matcher and resolver over a rule set and returns the match result.
func Evaluate(rules []domain.AssignmentRule, mctx domain.MatchContext) domain.MatchResult {
	winner := Resolve(Candidates(rules, mctx))
	if winner == nil {
		return domain.MatchResult{MatchedFields: []string{}}
	}
	ruleID := winner.Rule.RuleID
	costCenterID := winner.Rule.CostCenterID
	return domain.MatchResult{
		RuleID:        &ruleID,
		CostCenterID:  &costCenterID,
		Score:         winner.Score,
		MatchedFields: winner.MatchedFields,
	}
}
