package dto

import (
	"time"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RebuildDonationSummaryRequest defines the payload for the summary rebuild job.
type RebuildDonationSummaryRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// DonationSummaryResponse defines one summary row returned to clients.
type DonationSummaryResponse struct {
	SummaryID string          `json:"summaryID"`
	CompanyID string          `json:"companyID"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Category  string          `json:"category"`
	AccountID string          `json:"accountID"`
	Total     decimal.Decimal `json:"total"`
	RebuiltAt time.Time       `json:"rebuiltAt"`
}

// ListDonationSummariesResponse wraps summary rows with their grand total.
type ListDonationSummariesResponse struct {
	Summaries []DonationSummaryResponse `json:"summaries"`
	Total     decimal.Decimal           `json:"total"`
}

// TrialBalanceRowResponse defines one row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse wraps the trial balance rows and totals.
type TrialBalanceResponse struct {
	AsOf        time.Time                 `json:"asOf"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
}

// ToDonationSummaryResponses converts domain summary rows to DTOs.
func ToDonationSummaryResponses(rows []domain.DonationSummary) ListDonationSummariesResponse {
	responses := make([]DonationSummaryResponse, len(rows))
	total := decimal.Zero
	for i, r := range rows {
		responses[i] = DonationSummaryResponse{
			SummaryID: r.SummaryID,
			CompanyID: r.CompanyID,
			Year:      r.Year,
			Month:     r.Month,
			Category:  string(r.Category),
			AccountID: r.AccountID,
			Total:     r.Total,
			RebuiltAt: r.RebuiltAt,
		}
		total = total.Add(r.Total)
	}
	return ListDonationSummariesResponse{Summaries: responses, Total: total}
}

// ToTrialBalanceResponse converts trial balance rows to the report DTO.
func ToTrialBalanceResponse(asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	responses := make([]TrialBalanceRowResponse, len(rows))
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, r := range rows {
		responses[i] = TrialBalanceRowResponse{
			AccountID:   r.AccountID,
			AccountName: r.AccountName,
			AccountType: string(r.AccountType),
			Debit:       r.Debit,
			Credit:      r.Credit,
		}
		totalDebit = totalDebit.Add(r.Debit)
		totalCredit = totalCredit.Add(r.Credit)
	}
	return TrialBalanceResponse{AsOf: asOf, Rows: responses, TotalDebit: totalDebit, TotalCredit: totalCredit}
}
