package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
)

// categoryKeywords classifies income accounts into donation categories by
// substring match on the lowercased account name. First match wins; an
// account matching nothing falls into GENERAL.
var categoryKeywords = []struct {
	keyword  string
	category domain.DonationCategory
}{
	{"zakat", domain.CategoryZakat},
	{"fitrana", domain.CategoryFitrana},
	{"fitra", domain.CategoryFitrana},
	{"fidya", domain.CategoryFidya},
	{"sadqa", domain.CategorySadqa},
	{"sadaqah", domain.CategorySadqa},
	{"hadiya", domain.CategoryHadiya},
	{"langar", domain.CategoryLangar},
	{"qurbani", domain.CategoryQurbani},
}

// classifyAccountName maps an income account name to its donation category.
func classifyAccountName(name string) domain.DonationCategory {
	lowered := strings.ToLower(name)
	for _, entry := range categoryKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.category
		}
	}
	return domain.CategoryGeneral
}

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates the read-side reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService:   BaseService{CompanyAuthorizer: companySvc},
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, companyID string, asOf time.Time, userID string) ([]domain.TrialBalanceRow, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.reportingRepo.GetTrialBalanceData(ctx, companyID, asOf)
}

// RebuildDonationSummaries recomputes the donation report for one month from
// the posted ledger and replaces every stored row for that period. The
// replace is transactional, so a failed rebuild leaves the prior rows intact.
func (s *reportingService) RebuildDonationSummaries(ctx context.Context, companyID string, year, month int, userID string) ([]domain.DonationSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleApprover); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	totals, err := s.reportingRepo.SumPostedIncomeByAccount(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rows := make([]domain.DonationSummary, 0, len(totals))
	for _, total := range totals {
		if total.Total.IsZero() {
			continue
		}
		rows = append(rows, domain.DonationSummary{
			SummaryID: uuid.NewString(),
			CompanyID: companyID,
			Year:      year,
			Month:     month,
			Category:  classifyAccountName(total.AccountName),
			AccountID: total.AccountID,
			Total:     total.Total,
			RebuiltAt: now,
			RebuiltBy: userID,
		})
	}

	if err := s.reportingRepo.ReplaceDonationSummaries(ctx, companyID, year, month, rows); err != nil {
		s.LogError(ctx, err, "Donation summary rebuild failed",
			slog.String("company_id", companyID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, err
	}

	s.LogInfo(ctx, "Donation summaries rebuilt",
		slog.String("company_id", companyID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("rows", len(rows)))
	return rows, nil
}

func (s *reportingService) ListDonationSummaries(ctx context.Context, companyID string, year, month int, userID string) ([]domain.DonationSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.reportingRepo.ListDonationSummaries(ctx, companyID, year, month)
}
