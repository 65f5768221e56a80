package repositories

import (
	"context"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// ReportingRepositoryFacade defines read-side aggregation queries and the
// drop-and-rebuild persistence of donation summaries.
type ReportingRepositoryFacade interface {
	// GetTrialBalanceData sums posted debit and credit activity per account as
	// of the given date. Reversal pairs cancel out and are excluded.
	GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error)
	// SumPostedIncomeByAccount totals posted credit activity on income
	// accounts over [from, to).
	SumPostedIncomeByAccount(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountTotal, error)
	// ReplaceDonationSummaries deletes every prior summary for the
	// (company, year, month) key and inserts rows in one transaction. Partial
	// results are never committed.
	ReplaceDonationSummaries(ctx context.Context, companyID string, year, month int, rows []domain.DonationSummary) error
	ListDonationSummaries(ctx context.Context, companyID string, year, month int) ([]domain.DonationSummary, error)
}
