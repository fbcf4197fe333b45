package pgsql

import (
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	documentRepo := newPgxDocumentRepository(dbPool)
	lookupRepo := newPgxLookupRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:           documentRepo,
		AssignmentRuleRepo:  newPgxAssignmentRuleRepository(dbPool),
		CounterpartyTagRepo: lookupRepo,
		ItemCategoryRepo:    lookupRepo,
		CostCenterRepo:      newPgxCostCenterRepository(dbPool),
		DocumentRepo:        documentRepo,
		LedgerRepo:          newPgxLedgerRepository(dbPool),
		TransactionLineRepo: newPgxTransactionLineRepository(dbPool),
	}
}
