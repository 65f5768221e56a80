package pgsql

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	"github.com/awtech/cashdesk/internal/models"
	"github.com/awtech/cashdesk/internal/utils/accounting"
	"github.com/awtech/cashdesk/internal/utils/mapping"
	"github.com/awtech/cashdesk/internal/utils/pagination"
)

const journalColumns = `journal_id, company_id, journal_date, reference, description, currency_code, status, amount, original_journal_id, reversing_journal_id, created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, journal_id, account_id, amount, line_type, currency_code, description, party_id, running_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryWithTx
}

func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryWithTx) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// linesInInsertOrder returns a copy of the lines sorted by LineID so running
// balances advance deterministically. The caller's slice is left untouched.
func linesInInsertOrder(lines []domain.JournalLine) []domain.JournalLine {
	ordered := make([]domain.JournalLine, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].LineID < ordered[j].LineID
	})
	return ordered
}

// SaveJournal inserts the journal, locks and adjusts the affected account
// balances and inserts the lines with running balances, all in one database
// transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, journalQuery,
		m.JournalID, m.CompanyID, m.JournalDate, m.Reference, m.Description,
		m.CurrencyCode, m.Status, m.Amount, m.OriginalJournalID, m.ReversingJournalID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, journal.CreatedBy, journal.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	// Running balances start from the balance before this journal's changes
	// and advance line by line in a deterministic order.
	runningBalances := make(map[string]decimal.Decimal, len(lockedAccounts))
	for accountID, account := range lockedAccounts {
		runningBalances[accountID] = account.Balance
	}
	ordered := linesInInsertOrder(lines)

	lineQuery := `
		INSERT INTO journal_lines (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	batch := &pgx.Batch{}
	for _, line := range ordered {
		account, ok := lockedAccounts[line.AccountID]
		if !ok {
			return apperrors.NewAppError(500, "locked account "+line.AccountID+" missing during line insert", nil)
		}
		signed, err := accounting.CalculateSignedAmount(line, account.AccountType)
		if err != nil {
			return apperrors.NewAppError(500, "failed to compute signed amount for line "+line.LineID, err)
		}
		runningBalances[line.AccountID] = runningBalances[line.AccountID].Add(signed)
		line.RunningBalance = runningBalances[line.AccountID]

		lm := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			lm.LineID, lm.JournalID, lm.AccountID, lm.Amount, lm.LineType,
			lm.CurrencyCode, lm.Description, lm.PartyID, lm.RunningBalance,
			lm.CreatedAt, lm.CreatedBy, lm.LastUpdatedAt, lm.LastUpdatedBy,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range ordered {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert journal line", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close journal line batch", err)
	}

	return r.Commit(ctx, tx)
}

func scanJournal(row pgx.Row) (*models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID, &m.CompanyID, &m.JournalDate, &m.Reference, &m.Description,
		&m.CurrencyCode, &m.Status, &m.Amount, &m.OriginalJournalID, &m.ReversingJournalID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal "+journalID, err)
	}
	journal := mapping.ToDomainJournal(*m)
	return &journal, nil
}

func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_id = $1 ORDER BY line_id;`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID, &m.JournalID, &m.AccountID, &m.Amount, &m.LineType,
			&m.CurrencyCode, &m.Description, &m.PartyID, &m.RunningBalance,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return lines, nil
}

func (r *PgxJournalRepository) UpdateJournalStatusAndLinks(ctx context.Context, journalID string, status domain.JournalStatus, reversingJournalID *string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $2, reversing_journal_id = $3, last_updated_by = $4, last_updated_at = $5
		WHERE journal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, journalID, string(status), reversingJournalID, updatedBy, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal status "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListJournalsByCompany pages newest first using a (journal_date, created_at)
// keyset token.
func (r *PgxJournalRepository) ListJournalsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE company_id = $1`
	args := []any{companyID}

	if nextToken != nil && *nextToken != "" {
		journalDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (journal_date, created_at) < ($2, $3)`
		args = append(args, journalDate, createdAt)
	}
	query += ` ORDER BY journal_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals for company "+companyID, err)
	}
	defer rows.Close()

	var journals []domain.Journal
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		journals = append(journals, mapping.ToDomainJournal(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	var token *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[len(journals)-1]
		t := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		token = &t
	}
	return journals, token, nil
}
