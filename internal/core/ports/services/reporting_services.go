package services

import (
	"context"
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
)

// ReportingSvcFacade runs read-side reports and the donation summary rebuild job.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, companyID string, asOf time.Time, userID string) ([]domain.TrialBalanceRow, error)
	// RebuildDonationSummaries classifies posted income activity for the
	// period into donation categories and replaces the stored summaries for
	// the (company, period) key. Any failure aborts the whole batch.
	RebuildDonationSummaries(ctx context.Context, companyID string, year, month int, userID string) ([]domain.DonationSummary, error)
	ListDonationSummaries(ctx context.Context, companyID string, year, month int, userID string) ([]domain.DonationSummary, error)
}
