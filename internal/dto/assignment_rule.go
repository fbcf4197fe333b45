package dto

import (
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// CreateAssignmentRuleRequest defines the data needed to create an assignment rule.
// At least one of the four predicates must be set. Priority defaults to the rule's specificity.
type CreateAssignmentRuleRequest struct {
	Name              string  `json:"name" binding:"required,max=120"`
	CounterpartyTagID *string `json:"counterpartyTagID"`
	CounterpartyID    *string `json:"counterpartyID"`
	ItemCategoryID    *string `json:"itemCategoryID"`
	ItemID            *string `json:"itemID"`
	CostCenterID      string  `json:"costCenterID" binding:"required"`
	Priority          *int    `json:"priority" binding:"omitempty,min=0"`
}

// UpdateAssignmentRuleRequest replaces the definition of a rule. Omitted predicates become wildcards.
type UpdateAssignmentRuleRequest struct {
	Name              string  `json:"name" binding:"required,max=120"`
	CounterpartyTagID *string `json:"counterpartyTagID"`
	CounterpartyID    *string `json:"counterpartyID"`
	ItemCategoryID    *string `json:"itemCategoryID"`
	ItemID            *string `json:"itemID"`
	CostCenterID      string  `json:"costCenterID" binding:"required"`
	Priority          *int    `json:"priority" binding:"omitempty,min=0"`
}

// ListAssignmentRulesParams defines query parameters for listing rules.
type ListAssignmentRulesParams struct {
	IncludeArchived bool `form:"includeArchived"`
}

// AssignmentRuleResponse defines the data returned for an assignment rule.
type AssignmentRuleResponse struct {
	RuleID            string     `json:"ruleID"`
	Name              string     `json:"name"`
	CounterpartyTagID *string    `json:"counterpartyTagID"`
	CounterpartyID    *string    `json:"counterpartyID"`
	ItemCategoryID    *string    `json:"itemCategoryID"`
	ItemID            *string    `json:"itemID"`
	CostCenterID      string     `json:"costCenterID"`
	Specificity       int        `json:"specificity"`
	Priority          int        `json:"priority"`
	IsArchived        bool       `json:"isArchived"`
	ArchivedAt        *time.Time `json:"archivedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	CreatedBy         string     `json:"createdBy"`
	LastUpdatedAt     time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy     string     `json:"lastUpdatedBy"`
}

// ToAssignmentRuleResponse converts a domain.AssignmentRule to its response DTO
func ToAssignmentRuleResponse(r *domain.AssignmentRule) AssignmentRuleResponse {
	return AssignmentRuleResponse{
		RuleID:            r.RuleID,
		Name:              r.Name,
		CounterpartyTagID: r.CounterpartyTagID,
		CounterpartyID:    r.CounterpartyID,
		ItemCategoryID:    r.ItemCategoryID,
		ItemID:            r.ItemID,
		CostCenterID:      r.CostCenterID,
		Specificity:       r.Specificity,
		Priority:          r.Priority,
		IsArchived:        r.IsArchived,
		ArchivedAt:        r.ArchivedAt,
		CreatedAt:         r.CreatedAt,
		CreatedBy:         r.CreatedBy,
		LastUpdatedAt:     r.LastUpdatedAt,
		LastUpdatedBy:     r.LastUpdatedBy,
	}
}

// ToListAssignmentRuleResponse converts a slice of rules to response DTOs
func ToListAssignmentRuleResponse(rules []domain.AssignmentRule) []AssignmentRuleResponse {
	res := make([]AssignmentRuleResponse, len(rules))
	for i := range rules {
		res[i] = ToAssignmentRuleResponse(&rules[i])
	}
	return res
}
