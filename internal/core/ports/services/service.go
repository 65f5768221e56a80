package services

// ServiceContainer bundles every service facade for injection into handlers.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Company   CompanySvcFacade
	Account   AccountSvcFacade
	Document  DocumentSvcFacade
	Ledger    LedgerSvcFacade
	Sequence  SequenceSvcFacade
	Reporting ReportingSvcFacade
}
