package domain

// CostCenter is an analytical account: a named bucket that transaction value is attributed to
// for reporting. Cost centers are never deleted, only archived.
type CostCenter struct {
	CostCenterID string `json:"costCenterID"` // Primary Key (UUID)
	WorkplaceID  string `json:"workplaceID"`  // FK -> workplaces.workplace_id
	Code         string `json:"code"`         // Unique per workplace, e.g. "CC-001"
	Name         string `json:"name"`
	IsArchived   bool   `json:"isArchived"`
	AuditFields
}
