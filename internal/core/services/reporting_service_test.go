package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/awtech/cashdesk/internal/core/domain"
)

func TestClassifyAccountName(t *testing.T) {
	cases := map[string]domain.DonationCategory{
		"Zakat Collection":    domain.CategoryZakat,
		"zakat fund":          domain.CategoryZakat,
		"Fitrana Income":      domain.CategoryFitrana,
		"Fitra Box":           domain.CategoryFitrana,
		"Fidya Receipts":      domain.CategoryFidya,
		"Sadqa Account":       domain.CategorySadqa,
		"Sadaqah Jariya":      domain.CategorySadqa,
		"Hadiya Received":     domain.CategoryHadiya,
		"Langar Fund":         domain.CategoryLangar,
		"Qurbani Collections": domain.CategoryQurbani,
		"Membership Income":   domain.CategoryGeneral,
		"":                    domain.CategoryGeneral,
	}
	for name, want := range cases {
		assert.Equal(t, want, classifyAccountName(name), "account name %q", name)
	}
}

func TestRebuildDonationSummaries_ReplacesPeriodRows(t *testing.T) {
	repo := new(MockReportingRepository)
	companySvc := new(MockCompanyService)
	svc := NewReportingService(repo, companySvc).(*reportingService)
	ctx := context.Background()

	companySvc.On("AuthorizeUserAction", ctx, "user-2", "comp-1", domain.RoleApprover).Return(nil)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	repo.On("SumPostedIncomeByAccount", ctx, "comp-1", from, to).Return([]domain.AccountTotal{
		{AccountID: "acc-zakat", AccountName: "Zakat Collection", Total: decimal.NewFromInt(1200)},
		{AccountID: "acc-langar", AccountName: "Langar Fund", Total: decimal.NewFromInt(300)},
		{AccountID: "acc-other", AccountName: "Membership Income", Total: decimal.NewFromInt(50)},
		{AccountID: "acc-idle", AccountName: "Dormant Fund", Total: decimal.Zero},
	}, nil)

	var captured []domain.DonationSummary
	repo.On("ReplaceDonationSummaries", ctx, "comp-1", 2026, 3, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(4).([]domain.DonationSummary)
		}).
		Return(nil)

	rows, err := svc.RebuildDonationSummaries(ctx, "comp-1", 2026, 3, "user-2")

	require.NoError(t, err)
	require.Len(t, rows, 3) // zero-activity accounts are dropped
	assert.Equal(t, rows, captured)

	byAccount := make(map[string]domain.DonationSummary, len(captured))
	for _, row := range captured {
		byAccount[row.AccountID] = row
	}
	assert.Equal(t, domain.CategoryZakat, byAccount["acc-zakat"].Category)
	assert.Equal(t, domain.CategoryLangar, byAccount["acc-langar"].Category)
	assert.Equal(t, domain.CategoryGeneral, byAccount["acc-other"].Category)
	assert.Equal(t, 2026, byAccount["acc-zakat"].Year)
	assert.Equal(t, 3, byAccount["acc-zakat"].Month)
	assert.Equal(t, "user-2", byAccount["acc-zakat"].RebuiltBy)
}

func TestRebuildDonationSummaries_FailedReplaceAbortsBatch(t *testing.T) {
	repo := new(MockReportingRepository)
	companySvc := new(MockCompanyService)
	svc := NewReportingService(repo, companySvc).(*reportingService)
	ctx := context.Background()

	companySvc.On("AuthorizeUserAction", ctx, "user-2", "comp-1", domain.RoleApprover).Return(nil)
	repo.On("SumPostedIncomeByAccount", ctx, "comp-1", mock.Anything, mock.Anything).Return([]domain.AccountTotal{
		{AccountID: "acc-zakat", AccountName: "Zakat Collection", Total: decimal.NewFromInt(1200)},
	}, nil)
	repo.On("ReplaceDonationSummaries", ctx, "comp-1", 2026, 3, mock.Anything).
		Return(errors.New("tx aborted"))

	_, err := svc.RebuildDonationSummaries(ctx, "comp-1", 2026, 3, "user-2")

	require.Error(t, err)
}

func TestRebuildDonationSummaries_RequiresApproverRole(t *testing.T) {
	repo := new(MockReportingRepository)
	companySvc := new(MockCompanyService)
	svc := NewReportingService(repo, companySvc).(*reportingService)
	ctx := context.Background()

	companySvc.On("AuthorizeUserAction", ctx, "user-3", "comp-1", domain.RoleApprover).
		Return(errors.New("forbidden"))

	_, err := svc.RebuildDonationSummaries(ctx, "comp-1", 2026, 3, "user-3")

	require.Error(t, err)
	repo.AssertNotCalled(t, "SumPostedIncomeByAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ReplaceDonationSummaries", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
