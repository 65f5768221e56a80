package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	DocumentRepo  DocumentRepositoryFacade
	SequenceRepo  SequenceRepositoryFacade
	AccountRepo   AccountRepositoryWithTx
	JournalRepo   JournalRepositoryFacade
	CompanyRepo   CompanyRepositoryFacade
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
