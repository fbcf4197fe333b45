package models

import "github.com/shopspring/decimal"

// TransactionLine is the row shape of the transaction_lines table.
type TransactionLine struct {
	LineID           string          `db:"line_id"`
	WorkplaceID      string          `db:"workplace_id"`
	DocumentID       string          `db:"document_id"`
	CounterpartyID   *string         `db:"counterparty_id"`
	ItemID           *string         `db:"item_id"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	CostCenterID     *string         `db:"cost_center_id"`
	AssignedByRuleID *string         `db:"assigned_by_rule_id"`
	AuditFields
}
