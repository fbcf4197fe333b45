package models

// CostCenter is the row shape of the cost_centers table.
type CostCenter struct {
	CostCenterID string `db:"cost_center_id"`
	WorkplaceID  string `db:"workplace_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	IsArchived   bool   `db:"is_archived"`
	AuditFields
}
