package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/awtech/cashdesk/internal/dto"
)

type ledgerServiceMocks struct {
	journalRepo *MockJournalRepository
	companySvc  *MockCompanyService
	accountSvc  *MockAccountService
}

func newLedgerServiceForTest(t *testing.T) (*ledgerService, *ledgerServiceMocks) {
	t.Helper()
	m := &ledgerServiceMocks{
		journalRepo: new(MockJournalRepository),
		companySvc:  new(MockCompanyService),
		accountSvc:  new(MockAccountService),
	}
	svc := NewLedgerService(m.journalRepo, m.companySvc, m.accountSvc).(*ledgerService)
	return svc, m
}

func balancedRequest() dto.PostJournalRequest {
	return dto.PostJournalRequest{
		CompanyID:   "comp-1",
		JournalDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Reference:   "C01/PAY/000042",
		Description: "Office rent",
		Lines: []dto.PostingLine{
			{AccountID: "acc-exp", Debit: decimal.NewFromInt(500)},
			{AccountID: "acc-cash", Credit: decimal.NewFromInt(500)},
		},
	}
}

func TestCreateAndPost_Success(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)
	m.accountSvc.On("GetAccountsByIDs", ctx, "comp-1", []string{"acc-exp", "acc-cash"}).Return(paymentAccounts(), nil)

	var capturedJournal domain.Journal
	var capturedLines []domain.JournalLine
	var capturedChanges map[string]decimal.Decimal
	m.journalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalLine"), mock.Anything).
		Run(func(args mock.Arguments) {
			capturedJournal = args.Get(1).(domain.Journal)
			capturedLines = args.Get(2).([]domain.JournalLine)
			capturedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil)

	journal, err := svc.CreateAndPost(ctx, balancedRequest(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, domain.Posted, journal.Status)
	assert.True(t, journal.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "PKR", capturedJournal.CurrencyCode) // company default fills in

	require.Len(t, capturedLines, 2)
	assert.Equal(t, domain.Debit, capturedLines[0].LineType)
	assert.Equal(t, domain.Credit, capturedLines[1].LineType)
	assert.True(t, capturedLines[0].Amount.Equal(capturedLines[1].Amount))

	// Debit to an expense raises it, credit to an asset lowers it.
	assert.True(t, capturedChanges["acc-exp"].Equal(decimal.NewFromInt(500)))
	assert.True(t, capturedChanges["acc-cash"].Equal(decimal.NewFromInt(-500)))
}

func TestCreateAndPost_RejectsUnbalancedLines(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)

	req := balancedRequest()
	req.Lines[1].Credit = decimal.NewFromInt(400)

	_, err := svc.CreateAndPost(ctx, req, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
	m.journalRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAndPost_RejectsSingleLine(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)

	req := balancedRequest()
	req.Lines = req.Lines[:1]

	_, err := svc.CreateAndPost(ctx, req, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
}

func TestCreateAndPost_RejectsSingleAccount(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)

	req := balancedRequest()
	req.Lines[1].AccountID = "acc-exp"

	_, err := svc.CreateAndPost(ctx, req, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
}

func TestCreateAndPost_RejectsTwoSidedLine(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)

	req := balancedRequest()
	req.Lines[0].Credit = decimal.NewFromInt(500)

	_, err := svc.CreateAndPost(ctx, req, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
}

func TestCreateAndPost_RejectsInactiveAccount(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	accounts := paymentAccounts()
	cash := accounts["acc-cash"]
	cash.IsActive = false
	accounts["acc-cash"] = cash

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)
	m.accountSvc.On("GetAccountsByIDs", ctx, "comp-1", []string{"acc-exp", "acc-cash"}).Return(accounts, nil)

	_, err := svc.CreateAndPost(ctx, balancedRequest(), "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
	m.journalRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAndPost_RejectsMissingAccount(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	accounts := paymentAccounts()
	delete(accounts, "acc-cash")

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)
	m.accountSvc.On("GetAccountsByIDs", ctx, "comp-1", []string{"acc-exp", "acc-cash"}).Return(accounts, nil)

	_, err := svc.CreateAndPost(ctx, balancedRequest(), "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
}

func TestCreateAndPost_RejectsLockedPeriod(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	company := testCompany()
	lock := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	company.LockDate = &lock

	m.companySvc.On("AuthorizeUserAction", ctx, "user-1", "comp-1", domain.RoleMember).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(company, nil)

	_, err := svc.CreateAndPost(ctx, balancedRequest(), "user-1")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
	m.journalRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReverseJournal_MirrorsLines(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	original := &domain.Journal{
		JournalID:    "jrn-1",
		CompanyID:    "comp-1",
		Reference:    "C01/PAY/000042",
		CurrencyCode: "PKR",
		Status:       domain.Posted,
		Amount:       decimal.NewFromInt(500),
	}
	originalLines := []domain.JournalLine{
		{LineID: "l1", JournalID: "jrn-1", AccountID: "acc-exp", Amount: decimal.NewFromInt(500), LineType: domain.Debit, CurrencyCode: "PKR"},
		{LineID: "l2", JournalID: "jrn-1", AccountID: "acc-cash", Amount: decimal.NewFromInt(500), LineType: domain.Credit, CurrencyCode: "PKR"},
	}

	m.journalRepo.On("FindJournalByID", ctx, "jrn-1").Return(original, nil)
	m.companySvc.On("AuthorizeUserAction", ctx, "user-2", "comp-1", domain.RoleApprover).Return(nil)
	m.companySvc.On("GetCompanyByID", ctx, "comp-1").Return(testCompany(), nil)
	m.journalRepo.On("FindLinesByJournalID", ctx, "jrn-1").Return(originalLines, nil)
	m.accountSvc.On("GetAccountsByIDs", ctx, "comp-1", []string{"acc-exp", "acc-cash"}).Return(paymentAccounts(), nil)

	var capturedLines []domain.JournalLine
	var capturedChanges map[string]decimal.Decimal
	m.journalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalLine"), mock.Anything).
		Run(func(args mock.Arguments) {
			capturedLines = args.Get(2).([]domain.JournalLine)
			capturedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).
		Return(nil)
	m.journalRepo.On("UpdateJournalStatusAndLinks", ctx, "jrn-1", domain.Reversed, mock.AnythingOfType("*string"), "user-2", mock.AnythingOfType("time.Time")).Return(nil)

	reversal, err := svc.ReverseJournal(ctx, "jrn-1", "user-2")

	require.NoError(t, err)
	require.NotNil(t, reversal.OriginalJournalID)
	assert.Equal(t, "jrn-1", *reversal.OriginalJournalID)

	require.Len(t, capturedLines, 2)
	assert.Equal(t, domain.Credit, capturedLines[0].LineType) // flipped from debit
	assert.Equal(t, domain.Debit, capturedLines[1].LineType)

	// The reversal undoes the original balance effect.
	assert.True(t, capturedChanges["acc-exp"].Equal(decimal.NewFromInt(-500)))
	assert.True(t, capturedChanges["acc-cash"].Equal(decimal.NewFromInt(500)))
}

func TestReverseJournal_RejectsAlreadyReversed(t *testing.T) {
	svc, m := newLedgerServiceForTest(t)
	ctx := context.Background()

	reversed := &domain.Journal{JournalID: "jrn-1", CompanyID: "comp-1", Status: domain.Reversed}
	m.journalRepo.On("FindJournalByID", ctx, "jrn-1").Return(reversed, nil)
	m.companySvc.On("AuthorizeUserAction", ctx, "user-2", "comp-1", domain.RoleApprover).Return(nil)

	_, err := svc.ReverseJournal(ctx, "jrn-1", "user-2")

	assert.ErrorIs(t, err, apperrors.ErrPosting)
	m.journalRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
