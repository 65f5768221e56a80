package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/awtech/cashdesk/internal/apperrors"
	"github.com/awtech/cashdesk/internal/core/domain"
	portsrepo "github.com/awtech/cashdesk/internal/core/ports/repositories"
	"github.com/awtech/cashdesk/internal/models"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetTrialBalanceData sums debit and credit activity per account up to asOf.
// A reversal pair adds the same amount to both columns, so its net effect on
// the balance is zero.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.name, a.account_type,
			COALESCE(SUM(CASE WHEN j.journal_date <= $2 AND l.line_type = 'DEBIT' THEN l.amount ELSE 0 END), 0) AS debit,
			COALESCE(SUM(CASE WHEN j.journal_date <= $2 AND l.line_type = 'CREDIT' THEN l.amount ELSE 0 END), 0) AS credit
		FROM accounts a
		LEFT JOIN journal_lines l ON l.account_id = a.account_id
		LEFT JOIN journals j ON j.journal_id = l.journal_id
		WHERE a.company_id = $1
		GROUP BY a.account_id, a.name, a.account_type, a.code
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance data", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		if err := rows.Scan(&row.AccountID, &row.AccountName, &accountType, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return result, nil
}

// SumPostedIncomeByAccount totals posted credit activity on income accounts
// over [from, to). Reversed journals are excluded together with their
// reversal so refunded donations do not inflate the summaries.
func (r *PgxReportingRepository) SumPostedIncomeByAccount(ctx context.Context, companyID string, from, to time.Time) ([]domain.AccountTotal, error) {
	query := `
		SELECT a.account_id, a.name,
			COALESCE(SUM(CASE WHEN l.line_type = 'CREDIT' THEN l.amount ELSE -l.amount END), 0) AS total
		FROM accounts a
		JOIN journal_lines l ON l.account_id = a.account_id
		JOIN journals j ON j.journal_id = l.journal_id
		WHERE a.company_id = $1
			AND a.account_type = 'INCOME'
			AND j.status = 'POSTED'
			AND j.original_journal_id IS NULL
			AND j.journal_date >= $2 AND j.journal_date < $3
		GROUP BY a.account_id, a.name
		ORDER BY a.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query income totals", err)
	}
	defer rows.Close()

	var totals []domain.AccountTotal
	for rows.Next() {
		var t domain.AccountTotal
		if err := rows.Scan(&t.AccountID, &t.AccountName, &t.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan income total row", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating income total rows", err)
	}
	return totals, nil
}

// ReplaceDonationSummaries deletes the period's rows and inserts the new set
// in one transaction, so readers never observe a partial rebuild.
func (r *PgxReportingRepository) ReplaceDonationSummaries(ctx context.Context, companyID string, year, month int, summaries []domain.DonationSummary) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteQuery := `DELETE FROM donation_summaries WHERE company_id = $1 AND year = $2 AND month = $3;`
	if _, err := tx.Exec(ctx, deleteQuery, companyID, year, month); err != nil {
		return apperrors.NewAppError(500, "failed to delete prior donation summaries", err)
	}

	insertQuery := `
		INSERT INTO donation_summaries (summary_id, company_id, year, month, category, account_id, total, rebuilt_at, rebuilt_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, s := range summaries {
		batch.Queue(insertQuery, s.SummaryID, s.CompanyID, s.Year, s.Month, string(s.Category), s.AccountID, s.Total, s.RebuiltAt, s.RebuiltBy)
	}
	results := tx.SendBatch(ctx, batch)
	for range summaries {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert donation summary", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close donation summary batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxReportingRepository) ListDonationSummaries(ctx context.Context, companyID string, year, month int) ([]domain.DonationSummary, error) {
	query := `
		SELECT summary_id, company_id, year, month, category, account_id, total, rebuilt_at, rebuilt_by
		FROM donation_summaries
		WHERE company_id = $1 AND year = $2 AND month = $3
		ORDER BY category, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, year, month)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query donation summaries", err)
	}
	defer rows.Close()

	var summaries []domain.DonationSummary
	for rows.Next() {
		var m models.DonationSummary
		if err := rows.Scan(&m.SummaryID, &m.CompanyID, &m.Year, &m.Month, &m.Category, &m.AccountID, &m.Total, &m.RebuiltAt, &m.RebuiltBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan donation summary row", err)
		}
		summaries = append(summaries, domain.DonationSummary{
			SummaryID: m.SummaryID,
			CompanyID: m.CompanyID,
			Year:      m.Year,
			Month:     m.Month,
			Category:  domain.DonationCategory(m.Category),
			AccountID: m.AccountID,
			Total:     m.Total,
			RebuiltAt: m.RebuiltAt,
			RebuiltBy: m.RebuiltBy,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating donation summary rows", err)
	}
	return summaries, nil
}
