package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	OrganizationRepo   OrganizationRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	PeriodRepo         PeriodRepositoryFacade
	JournalRepo        JournalRepositoryFacade
	LedgerRepo         LedgerRepository
	ClassificationRepo ClassificationRepositoryFacade
	TxManager          TransactionManager
}
