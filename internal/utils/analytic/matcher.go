// Package analytic holds the pure rule-matching and conflict-resolution logic used to assign
// cost centers to transaction lines.
package analytic

import (
	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// ScoreResult is the outcome of scoring one rule against one context.
type ScoreResult struct {
	Score         int
	MatchedFields []string
	Valid         bool
}

// Score evaluates a rule against a context. Every set predicate must match; a single miss makes
// the rule invalid for the context. Wildcards neither help nor hurt. A valid score equals the
// number of set predicates.
func Score(rule domain.AssignmentRule, mctx domain.MatchContext) ScoreResult {
	if rule.IsArchived {
		return ScoreResult{}
	}

	matched := make([]string, 0, 4)

	if rule.CounterpartyTagID != nil && *rule.CounterpartyTagID != "" {
		if !mctx.HasTag(*rule.CounterpartyTagID) {
			return ScoreResult{}
		}
		matched = append(matched, domain.FieldCounterpartyTag)
	}

	if !matchExact(rule.CounterpartyID, mctx.CounterpartyID, &matched, domain.FieldCounterparty) {
		return ScoreResult{}
	}
	if !matchExact(rule.ItemCategoryID, mctx.ItemCategoryID, &matched, domain.FieldItemCategory) {
		return ScoreResult{}
	}
	if !matchExact(rule.ItemID, mctx.ItemID, &matched, domain.FieldItem) {
		return ScoreResult{}
	}

	// A rule without predicates is rejected at creation; re-checked here so it can never win.
	if len(matched) == 0 {
		return ScoreResult{}
	}

	return ScoreResult{Score: len(matched), MatchedFields: matched, Valid: true}
}

// matchExact checks one identifier predicate. An unset predicate is skipped; a set predicate
// against an unset context value fails.
func matchExact(want, got *string, matched *[]string, field string) bool {
	if want == nil || *want == "" {
		return true
	}
	if got == nil || *got != *want {
		return false
	}
	*matched = append(*matched, field)
	return true
}
