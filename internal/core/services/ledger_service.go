package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/awtech/cashdesk/internal/core/ports/services"
	"github.com/awtech/cashdesk/internal/dto"
	"github.com/awtech/cashdesk/internal/utils/accounting"
)

// ledgerService posts balanced double-entry journals. It re-validates every
// request itself; callers are not trusted to supply balanced lines.
type ledgerService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	companySvc  portssvc.CompanyReaderSvc
}

// NewLedgerService creates the ledger posting service.
func NewLedgerService(
	journalRepo portsrepo.JournalRepositoryFacade,
	companySvc portssvc.CompanySvcFacade,
	accountSvc portssvc.AccountSvcFacade,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: BaseService{CompanyAuthorizer: companySvc},
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		companySvc:  companySvc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateLines enforces the structural invariants of a posting request and
// returns the debit-side total.
func (s *ledgerService) validateLines(lines []dto.PostingLine) (decimal.Decimal, error) {
	if len(lines) < 2 {
		return decimal.Zero, fmt.Errorf("%w: a journal requires at least two lines", apperrors.ErrPosting)
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	accountIDs := make(map[string]struct{}, len(lines))

	for i, line := range lines {
		if line.AccountID == "" {
			return decimal.Zero, fmt.Errorf("%w: line %d has no account", apperrors.ErrPosting, i)
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit == hasCredit {
			return decimal.Zero, fmt.Errorf("%w: line %d must carry a positive amount on exactly one side", apperrors.ErrPosting, i)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrPosting, i)
		}
		debitTotal = debitTotal.Add(line.Debit)
		creditTotal = creditTotal.Add(line.Credit)
		accountIDs[line.AccountID] = struct{}{}
	}

	if !debitTotal.Equal(creditTotal) {
		return decimal.Zero, fmt.Errorf("%w: debits (%s) do not equal credits (%s)", apperrors.ErrPosting, debitTotal, creditTotal)
	}
	if len(accountIDs) < 2 {
		return decimal.Zero, fmt.Errorf("%w: a journal must involve at least two distinct accounts", apperrors.ErrPosting)
	}
	return debitTotal, nil
}

// resolveAccounts fetches the referenced accounts and ensures each one
// belongs to the company and is active.
func (s *ledgerService) resolveAccounts(ctx context.Context, companyID string, lines []dto.PostingLine) (map[string]domain.Account, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s not found in company", apperrors.ErrPosting, id)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrPosting, account.Code)
		}
	}
	return accounts, nil
}

// CreateAndPost validates the request and atomically persists the journal,
// its lines and the account balance deltas.
func (s *ledgerService) CreateAndPost(ctx context.Context, req dto.PostJournalRequest, creatorUserID string) (*domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, req.CompanyID, domain.RoleMember); err != nil {
		return nil, err
	}

	company, err := s.companySvc.GetCompanyByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company.LockDate != nil && !req.JournalDate.After(*company.LockDate) {
		return nil, fmt.Errorf("%w: period is locked through %s", apperrors.ErrPosting, company.LockDate.Format("2006-01-02"))
	}

	amount, err := s.validateLines(req.Lines)
	if err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx, req.CompanyID, req.Lines)
	if err != nil {
		return nil, err
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = company.DefaultCurrencyCode
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	journal := domain.Journal{
		JournalID:    uuid.NewString(),
		CompanyID:    req.CompanyID,
		JournalDate:  req.JournalDate,
		Reference:    req.Reference,
		Description:  req.Description,
		CurrencyCode: currencyCode,
		Status:       domain.Posted,
		Amount:       amount,
		AuditFields:  audit,
	}

	lines := make([]domain.JournalLine, 0, len(req.Lines))
	for _, reqLine := range req.Lines {
		line := domain.JournalLine{
			LineID:       uuid.NewString(),
			JournalID:    journal.JournalID,
			AccountID:    reqLine.AccountID,
			CurrencyCode: currencyCode,
			Description:  reqLine.Description,
			PartyID:      reqLine.PartyID,
			AuditFields:  audit,
		}
		if reqLine.Debit.IsPositive() {
			line.Amount = reqLine.Debit
			line.LineType = domain.Debit
		} else {
			line.Amount = reqLine.Credit
			line.LineType = domain.Credit
		}
		lines = append(lines, line)
	}

	balanceChanges, err := accounting.CalculateBalanceChanges(lines, accounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, lines, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to persist journal",
			slog.String("company_id", req.CompanyID),
			slog.String("reference", req.Reference))
		return nil, err
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", journal.JournalID),
		slog.String("reference", journal.Reference),
		slog.String("amount", journal.Amount.String()))
	return &journal, nil
}

// GetJournalWithLines fetches a journal and its lines for a company member.
func (s *ledgerService) GetJournalWithLines(ctx context.Context, journalID string, userID string) (*domain.Journal, []domain.JournalLine, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, journal.CompanyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, nil, err
	}
	return journal, lines, nil
}

// ReverseJournal posts a mirrored journal (debits and credits swapped) and
// marks the original REVERSED, linking the pair in both directions.
func (s *ledgerService) ReverseJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error) {
	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, original.CompanyID, domain.RoleApprover); err != nil {
		return nil, err
	}
	if original.Status == domain.Reversed {
		return nil, fmt.Errorf("%w: journal %s is already reversed", apperrors.ErrPosting, journalID)
	}

	company, err := s.companySvc.GetCompanyByID(ctx, original.CompanyID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if company.LockDate != nil && !now.After(*company.LockDate) {
		return nil, fmt.Errorf("%w: period is locked through %s", apperrors.ErrPosting, company.LockDate.Format("2006-01-02"))
	}

	originalLines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccountsForLines(ctx, original.CompanyID, originalLines)
	if err != nil {
		return nil, err
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	reversal := domain.Journal{
		JournalID:         uuid.NewString(),
		CompanyID:         original.CompanyID,
		JournalDate:       now,
		Reference:         original.Reference,
		Description:       fmt.Sprintf("Reversal of %s", original.Reference),
		CurrencyCode:      original.CurrencyCode,
		Status:            domain.Posted,
		Amount:            original.Amount,
		OriginalJournalID: &original.JournalID,
		AuditFields:       audit,
	}

	reversalLines := make([]domain.JournalLine, len(originalLines))
	for i, line := range originalLines {
		flipped := domain.Credit
		if line.LineType == domain.Credit {
			flipped = domain.Debit
		}
		reversalLines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			JournalID:    reversal.JournalID,
			AccountID:    line.AccountID,
			Amount:       line.Amount,
			LineType:     flipped,
			CurrencyCode: line.CurrencyCode,
			Description:  reversal.Description,
			PartyID:      line.PartyID,
			AuditFields:  audit,
		}
	}

	balanceChanges, err := accounting.CalculateBalanceChanges(reversalLines, accounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}

	if err := s.journalRepo.SaveJournal(ctx, reversal, reversalLines, balanceChanges); err != nil {
		return nil, err
	}
	if err := s.journalRepo.UpdateJournalStatusAndLinks(ctx, original.JournalID, domain.Reversed, &reversal.JournalID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark original journal reversed",
			slog.String("journal_id", original.JournalID),
			slog.String("reversal_id", reversal.JournalID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal reversed",
		slog.String("journal_id", original.JournalID),
		slog.String("reversal_id", reversal.JournalID))
	return &reversal, nil
}

func (s *ledgerService) resolveAccountsForLines(ctx context.Context, companyID string, lines []domain.JournalLine) (map[string]domain.Account, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}
	return s.accountSvc.GetAccountsByIDs(ctx, companyID, ids)
}
