package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
)

// TransactionLineReader defines read operations for document lines
type TransactionLineReader interface {
	ListLinesByDocument(ctx context.Context, workplaceID, documentID string) ([]domain.TransactionLine, error)
}

// TransactionLineWriter defines write operations for document lines
type TransactionLineWriter interface {
	// AssignCostCenters sets cost_center_id and assigned_by_rule_id on lines whose
	// cost_center_id is still NULL. Lines assigned in the meantime are left untouched.
	// It returns the IDs of the lines actually updated.
	AssignCostCenters(ctx context.Context, workplaceID string, assignments []domain.LineAssignment, userID string, at time.Time) ([]string, error)
}

// TransactionLineRepositoryFacade combines all transaction-line repository interfaces
type TransactionLineRepositoryFacade interface {
	TransactionLineReader
	TransactionLineWriter
}
