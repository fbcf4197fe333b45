package dto

import "github.com/SscSPs/furniture_erp/internal/core/domain"

// EvaluateAssignmentRequest asks which cost center a single line would be assigned to.
type EvaluateAssignmentRequest struct {
	CounterpartyID *string `json:"counterpartyID"`
	ItemID         *string `json:"itemID"`
}

// EvaluateLineRequest is one line of a batch evaluation.
type EvaluateLineRequest struct {
	LineID         string  `json:"lineID" binding:"required"`
	CounterpartyID *string `json:"counterpartyID"`
	ItemID         *string `json:"itemID"`
}

// EvaluateBatchRequest evaluates many lines against one fresh rule snapshot.
type EvaluateBatchRequest struct {
	Lines []EvaluateLineRequest `json:"lines" binding:"required,min=1,max=1000,dive"`
}

// MatchResultResponse defines the data returned for a single evaluation.
type MatchResultResponse struct {
	Matched       bool     `json:"matched"`
	RuleID        *string  `json:"ruleID"`
	CostCenterID  *string  `json:"costCenterID"`
	Score         int      `json:"score"`
	MatchedFields []string `json:"matchedFields"`
}

// LineAssignmentsResponse defines the data returned for batch evaluation and line assignment.
type LineAssignmentsResponse struct {
	Assignments []domain.LineAssignment `json:"assignments"`
}

// ToMatchResultResponse converts a domain.MatchResult to its response DTO
func ToMatchResultResponse(r domain.MatchResult) MatchResultResponse {
	fields := r.MatchedFields
	if fields == nil {
		fields = []string{}
	}
	return MatchResultResponse{
		Matched:       r.Matched(),
		RuleID:        r.RuleID,
		CostCenterID:  r.CostCenterID,
		Score:         r.Score,
		MatchedFields: fields,
	}
}

// ToLineInputs converts batch request lines to domain inputs
func ToLineInputs(lines []EvaluateLineRequest) []domain.LineInput {
	inputs := make([]domain.LineInput, len(lines))
	for i, l := range lines {
		inputs[i] = domain.LineInput{LineID: l.LineID, CounterpartyID: l.CounterpartyID, ItemID: l.ItemID}
	}
	return inputs
}
