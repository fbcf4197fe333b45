package domain

import (
	"errors"
	"time"
)

// Predicate names reported in MatchResult.MatchedFields.
const (
	FieldCounterpartyTag = "counterpartyTag"
	FieldCounterparty    = "counterparty"
	FieldItemCategory    = "itemCategory"
	FieldItem            = "item"
)

// ErrRuleWithoutPredicates is returned for a rule that sets none of its match predicates.
// Such a rule would match every line and is indistinguishable from "no rule".
var ErrRuleWithoutPredicates = errors.New("assignment rule must set at least one match predicate")

// AssignmentRule (an analytic "model") maps optional match predicates to a target cost center.
// A nil predicate is a wildcard. Rules are only ever changed by administrators; the matching
// engine reads them and never writes them.
type AssignmentRule struct {
	RuleID            string     `json:"ruleID"`
	WorkplaceID       string     `json:"workplaceID"`
	Name              string     `json:"name"`
	CounterpartyTagID *string    `json:"counterpartyTagID,omitempty"`
	CounterpartyID    *string    `json:"counterpartyID,omitempty"`
	ItemCategoryID    *string    `json:"itemCategoryID,omitempty"`
	ItemID            *string    `json:"itemID,omitempty"`
	CostCenterID      string     `json:"costCenterID"`
	Specificity       int        `json:"specificity"` // Count of non-wildcard predicates
	Priority          int        `json:"priority"`    // Explicit priority; second tie-break key
	IsArchived        bool       `json:"isArchived"`
	ArchivedAt        *time.Time `json:"archivedAt,omitempty"`
	AuditFields
}

// PredicateCount returns the number of non-wildcard predicates on the rule.
func (r AssignmentRule) PredicateCount() int {
	n := 0
	for _, p := range []*string{r.CounterpartyTagID, r.CounterpartyID, r.ItemCategoryID, r.ItemID} {
		if isSet(p) {
			n++
		}
	}
	return n
}

// Validate checks the structural invariants of a rule definition.
func (r AssignmentRule) Validate() error {
	if r.PredicateCount() == 0 {
		return ErrRuleWithoutPredicates
	}
	if r.CostCenterID == "" {
		return errors.New("assignment rule must target a cost center")
	}
	return nil
}

// NormalizePredicates turns empty-string predicates into wildcards.
func (r *AssignmentRule) NormalizePredicates() {
	for _, p := range []**string{&r.CounterpartyTagID, &r.CounterpartyID, &r.ItemCategoryID, &r.ItemID} {
		if !isSet(*p) {
			*p = nil
		}
	}
}

func isSet(p *string) bool {
	return p != nil && *p != ""
}
