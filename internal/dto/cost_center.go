package dto

import (
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// CreateCostCenterRequest defines the data needed to create a cost center.
type CreateCostCenterRequest struct {
	Code string `json:"code" binding:"required,costcentercode"`
	Name string `json:"name" binding:"required,max=120"`
}

// ListCostCentersParams defines query parameters for listing cost centers.
type ListCostCentersParams struct {
	IncludeArchived bool `form:"includeArchived"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID  string    `json:"costCenterID"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	IsArchived    bool      `json:"isArchived"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCostCenterResponse converts a domain.CostCenter to CostCenterResponse DTO
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID:  cc.CostCenterID,
		Code:          cc.Code,
		Name:          cc.Name,
		IsArchived:    cc.IsArchived,
		CreatedAt:     cc.CreatedAt,
		CreatedBy:     cc.CreatedBy,
		LastUpdatedAt: cc.LastUpdatedAt,
		LastUpdatedBy: cc.LastUpdatedBy,
	}
}

// ToListCostCenterResponse converts a slice of domain.CostCenter to response DTOs
func ToListCostCenterResponse(ccs []domain.CostCenter) []CostCenterResponse {
	res := make([]CostCenterResponse, len(ccs))
	for i := range ccs {
		res[i] = ToCostCenterResponse(&ccs[i])
	}
	return res
}
