package models

import "time"

// AssignmentRule is the row shape of the assignment_rules table.
// Nullable predicate columns map to nil pointers (wildcards).
type AssignmentRule struct {
	RuleID            string     `db:"rule_id"`
	WorkplaceID       string     `db:"workplace_id"`
	Name              string     `db:"name"`
	CounterpartyTagID *string    `db:"counterparty_tag_id"`
	CounterpartyID    *string    `db:"counterparty_id"`
	ItemCategoryID    *string    `db:"item_category_id"`
	ItemID            *string    `db:"item_id"`
	CostCenterID      string     `db:"cost_center_id"`
	Specificity       int        `db:"specificity"`
	Priority          int        `db:"priority"`
	IsArchived        bool       `db:"is_archived"`
	ArchivedAt        *time.Time `db:"archived_at"`
	AuditFields
}
