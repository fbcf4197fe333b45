package domain

import "github.com/shopspring/decimal"

// TransactionLine is a single line of a purchase or sales document. CostCenterID is the
// analytic assignment target; AssignedByRuleID records which rule set it, if any.
type TransactionLine struct {
	LineID           string          `json:"lineID"`
	WorkplaceID      string          `json:"workplaceID"`
	DocumentID       string          `json:"documentID"`
	CounterpartyID   *string         `json:"counterpartyID,omitempty"`
	ItemID           *string         `json:"itemID,omitempty"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	CostCenterID     *string         `json:"costCenterID,omitempty"`
	AssignedByRuleID *string         `json:"assignedByRuleID,omitempty"`
	AuditFields
}
