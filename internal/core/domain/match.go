package domain

// MatchContext carries the facts a line is matched on. It is built per evaluation and never
// persisted.
type MatchContext struct {
	CounterpartyID     *string
	CounterpartyTagIDs []string
	ItemID             *string
	ItemCategoryID     *string
}

// HasTag reports whether the counterparty carries the given tag.
func (c MatchContext) HasTag(tagID string) bool {
	for _, t := range c.CounterpartyTagIDs {
		if t == tagID {
			return true
		}
	}
	return false
}

// MatchResult is the outcome of evaluating the active rule set against a context.
// RuleID and CostCenterID are nil when no rule matched; that is not an error.
type MatchResult struct {
	RuleID        *string  `json:"ruleID"`
	CostCenterID  *string  `json:"costCenterID"`
	Score         int      `json:"score"`
	MatchedFields []string `json:"matchedFields"`
}

// Matched reports whether a rule won.
func (r MatchResult) Matched() bool {
	return r.RuleID != nil
}

// LineInput identifies one line for batch evaluation.
type LineInput struct {
	LineID         string
	CounterpartyID *string
	ItemID         *string
}

// LineAssignment is the batch evaluation result for one line.
type LineAssignment struct {
	LineID               string  `json:"lineID"`
	AssignedCostCenterID *string `json:"assignedCostCenterID"`
	RuleID               *string `json:"ruleID"`
}
