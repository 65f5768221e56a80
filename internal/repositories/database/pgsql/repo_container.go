package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto one connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return &portsrepo.RepositoryProvider{
		DocumentRepo:  newPgxDocumentRepository(pool),
		SequenceRepo:  newPgxSequenceRepository(pool),
		AccountRepo:   accountRepo,
		JournalRepo:   newPgxJournalRepository(pool, accountRepo),
		CompanyRepo:   newPgxCompanyRepository(pool),
		UserRepo:      newPgxUserRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
