package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager           TransactionManager
	AssignmentRuleRepo  AssignmentRuleRepositoryFacade
	CounterpartyTagRepo CounterpartyTagReader
	ItemCategoryRepo    ItemCategoryReader
	CostCenterRepo      CostCenterRepositoryFacade
	DocumentRepo        DocumentRepositoryFacade
	LedgerRepo          LedgerRepositoryFacade
	TransactionLineRepo TransactionLineRepositoryFacade
}
