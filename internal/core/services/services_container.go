package services

import (
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/pkg/config"
)

// NewServiceContainer wires every service with its repositories. The company
// service doubles as the authorizer injected into the rest.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	companySvc := NewCompanyService(repos.CompanyRepo)
	accountSvc := NewAccountService(repos.AccountRepo, companySvc)
	sequenceSvc := NewSequenceService(repos.SequenceRepo)
	ledgerSvc := NewLedgerService(repos.JournalRepo, companySvc, accountSvc)
	documentSvc := NewDocumentService(repos.DocumentRepo, companySvc, accountSvc, sequenceSvc, ledgerSvc)
	reportingSvc := NewReportingService(repos.ReportingRepo, companySvc)

	return &portssvc.ServiceContainer{
		Auth: NewAuthService(repos.UserRepo, AuthServiceConfig{
			JWTSecret:      cfg.JWTSecret,
			ExpiryDuration: cfg.JWTExpiryDuration,
			Issuer:         cfg.JWTIssuer,
		}),
		User:      NewUserService(repos.UserRepo),
		Company:   companySvc,
		Account:   accountSvc,
		Document:  documentSvc,
		Ledger:    ledgerSvc,
		Sequence:  sequenceSvc,
		Reporting: reportingSvc,
	}
}
